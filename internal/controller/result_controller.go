package controller

import (
	"exam_backend/internal/service"
	"exam_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ResultController struct {
	Service *service.ResultService
}

func NewResultController(svc *service.ResultService) *ResultController {
	return &ResultController{Service: svc}
}

// @Summary Attempt results
// @Description Counts correct, wrong and unanswered questions for an attempt without changing anything.
// @Tags results
// @Accept json
// @Produce json
// @Param body body service.ResultRequest true "attempt"
// @Success 200 {object} util.Response{data=model.AttemptSummary}
// @Failure 400 {object} util.Response
// @Router /results [post]
func (c *ResultController) Summarize(ctx *gin.Context) {
	var req service.ResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Invalid request body: "+err.Error())
		return
	}

	summary, err := c.Service.Summarize(ctx.Request.Context(), req)
	if err != nil {
		util.Fail(ctx, err)
		return
	}
	util.Success(ctx, "", summary)
}
