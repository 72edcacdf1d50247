package controller

import (
	"exam_backend/internal/service"
	"exam_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ExamController struct {
	Service *service.ExamService
}

func NewExamController(svc *service.ExamService) *ExamController {
	return &ExamController{Service: svc}
}

// @Summary Generate an exam
// @Description Creates the quiz, generates its questions through the exam-authoring API, stores them and notifies the workflow.
// @Tags exams
// @Accept json
// @Produce json
// @Param body body service.ExamRequest true "generation parameters"
// @Success 200 {object} util.Response{data=service.ExamResult}
// @Failure 400 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /exams/generate [post]
func (c *ExamController) Generate(ctx *gin.Context) {
	var req service.ExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Invalid or missing parameters: "+err.Error())
		return
	}

	res, err := c.Service.Generate(ctx.Request.Context(), req)
	if err != nil {
		util.Fail(ctx, err)
		return
	}
	util.Success(ctx, "Quiz, questions, options inserted, and exam status updated successfully", res)
}

// @Summary Generate an exam (mode and language aware)
// @Description mode=test proxies to the sandbox without persisting; mode=live (default) runs the full pipeline. language is ar or en (default en).
// @Tags exams
// @Accept json
// @Produce json
// @Param body body service.ExamV2Request true "generation parameters"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /v2/exams/generate [post]
func (c *ExamController) GenerateV2(ctx *gin.Context) {
	var req service.ExamV2Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Invalid or missing parameters: "+err.Error())
		return
	}

	res, err := c.Service.GenerateV2(ctx.Request.Context(), req)
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	message := "Quiz, questions, options inserted, and exam status updated successfully"
	if _, live := res.(*service.ExamResult); !live {
		message = "Sandbox exam generated"
	}
	util.Success(ctx, message, res)
}
