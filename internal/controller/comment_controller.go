package controller

import (
	"exam_backend/internal/service"
	"exam_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CommentController struct {
	Service *service.CommentService
}

func NewCommentController(svc *service.CommentService) *CommentController {
	return &CommentController{Service: svc}
}

// @Summary Save or fetch a question comment
// @Description is_insert=true upserts the comment for (question_id, attempt_id, student_id); is_insert=false returns the stored comments.
// @Tags comments
// @Accept json
// @Produce json
// @Param body body service.CommentRequest true "comment"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /comments [post]
func (c *CommentController) Handle(ctx *gin.Context) {
	var req service.CommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Invalid request body: "+err.Error())
		return
	}

	res, err := c.Service.Handle(ctx.Request.Context(), req)
	if err != nil {
		util.Fail(ctx, err)
		return
	}
	util.Success(ctx, res.Message, res.Data)
}
