package repository

import (
	"context"
	"testing"

	"exam_backend/internal/model"
	"exam_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestAnswerUpsertKeepsOneRowPerNaturalKey(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewAnswerRepository(db)
	ctx := context.Background()

	first, err := repo.Upsert(ctx, &model.Answer{
		UserID: 1, QuestionID: 2, AttemptID: 9, OptionID: 5, IsCorrect: true, Comment: strPtr("first"),
	})
	require.NoError(t, err)
	assert.True(t, first.IsCorrect)

	second, err := repo.Upsert(ctx, &model.Answer{
		UserID: 1, QuestionID: 2, AttemptID: 9, OptionID: 6, IsCorrect: false, Comment: strPtr("second"),
	})
	require.NoError(t, err)

	assert.Equal(t, first.AnswerID, second.AnswerID)
	assert.Equal(t, uint(6), second.OptionID)
	assert.False(t, second.IsCorrect)
	require.NotNil(t, second.Comment)
	assert.Equal(t, "second", *second.Comment)

	count, err := repo.CountByKey(ctx, 1, 2, 9)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestAnswerListMarks(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewAnswerRepository(db)
	ctx := context.Background()

	for q, correct := range map[uint]bool{1: true, 2: false, 3: true} {
		_, err := repo.Upsert(ctx, &model.Answer{UserID: 7, QuestionID: q, AttemptID: 3, OptionID: q * 10, IsCorrect: correct})
		require.NoError(t, err)
	}
	// other user, same attempt id
	_, err := repo.Upsert(ctx, &model.Answer{UserID: 8, QuestionID: 1, AttemptID: 3, OptionID: 10, IsCorrect: true})
	require.NoError(t, err)

	marks, err := repo.ListMarks(ctx, 3, 7)
	require.NoError(t, err)
	assert.Len(t, marks, 3)

	correct := 0
	for _, m := range marks {
		if m.IsCorrect {
			correct++
		}
	}
	assert.Equal(t, 2, correct)
}

func TestAttemptUpdateTalliesOverwrites(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewAttemptRepository(db)
	ctx := context.Background()

	attempt := model.Attempt{QuizID: 1, UserID: 4, RightAnswers: 10, FalseAnswers: 10}
	require.NoError(t, db.Create(&attempt).Error)

	require.NoError(t, repo.UpdateTallies(ctx, attempt.AttemptID, 4, 2, 1))

	got, err := repo.FindByID(ctx, attempt.AttemptID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.RightAnswers)
	assert.Equal(t, 1, got.FalseAnswers)

	_, err = repo.FindByID(ctx, 999)
	assert.Error(t, err)
}
