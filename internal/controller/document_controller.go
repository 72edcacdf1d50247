package controller

import (
	"exam_backend/internal/service"
	"exam_backend/internal/util"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
)

type DocumentController struct {
	Service *service.DocumentService
}

func NewDocumentController(svc *service.DocumentService) *DocumentController {
	return &DocumentController{Service: svc}
}

// @Summary Exam paper
// @Description Returns a link to the quiz's .docx exam paper, generating and storing it on first request.
// @Tags documents
// @Accept json
// @Produce json
// @Param body body object true "{\"quiz_id\": 1}"
// @Success 200 {object} util.Response{data=service.DocumentLink}
// @Failure 400 {object} util.Response
// @Failure 405 {object} util.Response
// @Router /documents/exam [post]
func (c *DocumentController) Generate(ctx *gin.Context) {
	if ctx.Request.Method != http.MethodPost {
		util.MethodNotAllowed(ctx)
		return
	}

	var body struct {
		QuizID interface{} `json:"quiz_id"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.BadRequest(ctx, "Invalid quiz_id. Must be a number.")
		return
	}
	quizID, ok := positiveID(body.QuizID)
	if !ok {
		util.BadRequest(ctx, "Invalid quiz_id. Must be a number.")
		return
	}

	link, err := c.Service.Generate(ctx.Request.Context(), quizID)
	if err != nil {
		util.Fail(ctx, err)
		return
	}
	util.Success(ctx, "", link)
}

// positiveID accepts only JSON numbers that are positive whole values.
func positiveID(v interface{}) (uint, bool) {
	f, ok := v.(float64)
	if !ok || f < 1 || f != math.Trunc(f) || f > math.MaxUint32 {
		return 0, false
	}
	return uint(f), true
}
