package controller

import (
	"exam_backend/internal/service"
	"exam_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AnswerController struct {
	Service *service.AnswerService
}

func NewAnswerController(svc *service.AnswerService) *AnswerController {
	return &AnswerController{Service: svc}
}

// @Summary Record answers
// @Description Accepts one answer, an array of answers, or {"answers": [...]}. Each entry is upserted by (user_id, question_id, attempt_id) and the attempt tallies are recomputed.
// @Tags answers
// @Accept json
// @Produce json
// @Param body body []service.AnswerInput true "answers"
// @Success 200 {object} service.AnswerBatchResult
// @Failure 400 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /answers [post]
func (c *AnswerController) RecordAnswers(ctx *gin.Context) {
	body, err := ctx.GetRawData()
	if err != nil {
		util.BadRequest(ctx, "Unable to read request body.")
		return
	}

	entries, err := service.DecodeAnswers(body)
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	res, err := c.Service.RecordAnswers(ctx.Request.Context(), entries)
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":  util.StatusSuccess,
		"results": res.Results,
		"data":    res.Summary,
	})
}
