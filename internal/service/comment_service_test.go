package service

import (
	"context"
	"net/http"
	"testing"

	"exam_backend/internal/model"
	"exam_backend/internal/repository"
	"exam_backend/internal/testutil"
	"exam_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestCommentHandle(t *testing.T) {
	svc := NewCommentService(repository.NewCommentRepository(testutil.NewDB(t)))
	ctx := context.Background()

	t.Run("missing is_insert", func(t *testing.T) {
		_, err := svc.Handle(ctx, CommentRequest{QuestionID: 1, AttemptID: 2, StudentID: 3})
		require.Error(t, err)
		assert.Equal(t, util.KindValidation, util.AsAppError(err).Kind)
	})

	t.Run("fetch before insert is not found", func(t *testing.T) {
		_, err := svc.Handle(ctx, CommentRequest{IsInsert: boolPtr(false), QuestionID: 1, AttemptID: 2, StudentID: 3})
		require.Error(t, err)
		appErr := util.AsAppError(err)
		assert.Equal(t, util.KindNotFound, appErr.Kind)
		assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus())
	})

	t.Run("insert requires text", func(t *testing.T) {
		_, err := svc.Handle(ctx, CommentRequest{IsInsert: boolPtr(true), QuestionID: 1, AttemptID: 2, StudentID: 3})
		require.Error(t, err)
		assert.Equal(t, util.KindValidation, util.AsAppError(err).Kind)
	})

	t.Run("upsert then fetch", func(t *testing.T) {
		req := CommentRequest{IsInsert: boolPtr(true), QuestionID: 1, AttemptID: 2, StudentID: 3, CommentText: "first"}
		res, err := svc.Handle(ctx, req)
		require.NoError(t, err)
		first := res.Data.(*model.Comment)

		req.CommentText = "second"
		res, err = svc.Handle(ctx, req)
		require.NoError(t, err)
		second := res.Data.(*model.Comment)
		assert.Equal(t, first.CommentID, second.CommentID)
		assert.Equal(t, "second", second.CommentText)

		res, err = svc.Handle(ctx, CommentRequest{IsInsert: boolPtr(false), QuestionID: 1, AttemptID: 2, StudentID: 3})
		require.NoError(t, err)
		comments := res.Data.([]model.Comment)
		require.Len(t, comments, 1)
		assert.Equal(t, "second", comments[0].CommentText)
	})

	t.Run("fetch requires the full key", func(t *testing.T) {
		_, err := svc.Handle(ctx, CommentRequest{IsInsert: boolPtr(false), QuestionID: 1})
		require.Error(t, err)
		assert.Equal(t, util.KindValidation, util.AsAppError(err).Kind)
	})
}
