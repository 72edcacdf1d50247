package service

import (
	"context"
	"testing"

	"exam_backend/internal/model"
	"exam_backend/internal/repository"
	"exam_backend/internal/testutil"
	"exam_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultSummarize(t *testing.T) {
	db := testutil.NewDB(t)
	fx := testutil.SeedQuiz(t, db, "Math", "Jane", map[string][]string{
		"a": {"1", "2"}, "b": {"1", "2"}, "c": {"1", "2"},
	}, "a", "b", "c")

	answers := []model.Answer{
		{UserID: 1, QuestionID: fx.Questions[0].QuestionID, AttemptID: fx.Attempt.AttemptID, OptionID: fx.Questions[0].Options[0].OptionID, IsCorrect: true},
		{UserID: 1, QuestionID: fx.Questions[1].QuestionID, AttemptID: fx.Attempt.AttemptID, OptionID: fx.Questions[1].Options[1].OptionID, IsCorrect: false},
		// another user's answer is ignored
		{UserID: 2, QuestionID: fx.Questions[2].QuestionID, AttemptID: fx.Attempt.AttemptID, OptionID: fx.Questions[2].Options[0].OptionID, IsCorrect: true},
	}
	require.NoError(t, db.Create(&answers).Error)

	svc := NewResultService(repository.NewAnswerRepository(db), repository.NewQuestionRepository(db))
	got, err := svc.Summarize(context.Background(), ResultRequest{UserID: 1, QuizID: fx.Quiz.QuizID, AttemptID: fx.Attempt.AttemptID})
	require.NoError(t, err)
	assert.Equal(t, model.AttemptSummary{TotalQuestions: 3, CorrectAnswers: 1, WrongAnswers: 1, UnansweredQuestions: 1}, *got)

	var attempt model.Attempt
	require.NoError(t, db.First(&attempt, fx.Attempt.AttemptID).Error)
	assert.Zero(t, attempt.RightAnswers)
}

func TestResultSummarizeValidation(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewResultService(repository.NewAnswerRepository(db), repository.NewQuestionRepository(db))

	_, err := svc.Summarize(context.Background(), ResultRequest{UserID: 1, QuizID: 2})
	require.Error(t, err)
	assert.Equal(t, util.KindValidation, util.AsAppError(err).Kind)
}
