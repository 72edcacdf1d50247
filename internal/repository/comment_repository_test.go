package repository

import (
	"context"
	"testing"

	"exam_backend/internal/model"
	"exam_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentUpsertUpdatesInPlace(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	created, err := repo.Upsert(ctx, &model.Comment{QuestionID: 1, AttemptID: 2, StudentID: 3, CommentText: "unclear wording"})
	require.NoError(t, err)

	updated, err := repo.Upsert(ctx, &model.Comment{QuestionID: 1, AttemptID: 2, StudentID: 3, CommentText: "typo in option B"})
	require.NoError(t, err)
	assert.Equal(t, created.CommentID, updated.CommentID)
	assert.Equal(t, "typo in option B", updated.CommentText)

	rows, err := repo.FindByKey(ctx, 1, 2, 3)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	rows, err = repo.FindByKey(ctx, 1, 2, 4)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
