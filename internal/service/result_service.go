package service

import (
	"context"
	"exam_backend/internal/model"
	"exam_backend/internal/repository"
	"exam_backend/internal/util"
)

type ResultService struct {
	Answers   *repository.AnswerRepository
	Questions *repository.QuestionRepository
}

func NewResultService(answers *repository.AnswerRepository, questions *repository.QuestionRepository) *ResultService {
	return &ResultService{Answers: answers, Questions: questions}
}

type ResultRequest struct {
	UserID    uint `json:"user_id"`
	QuizID    uint `json:"quiz_id"`
	AttemptID uint `json:"attempt_id"`
}

// Summarize reads the attempt's answers without writing anything.
func (s *ResultService) Summarize(ctx context.Context, req ResultRequest) (*model.AttemptSummary, error) {
	if req.UserID == 0 || req.QuizID == 0 || req.AttemptID == 0 {
		return nil, util.NewValidationError("Missing required parameters: user_id, quiz_id, attempt_id")
	}

	total, err := s.Questions.CountByQuiz(ctx, req.QuizID)
	if err != nil {
		return nil, util.NewStoreError("Failed to fetch total questions", err)
	}
	marks, err := s.Answers.ListMarks(ctx, req.AttemptID, req.UserID)
	if err != nil {
		return nil, util.NewStoreError("Failed to fetch answers", err)
	}

	summary := SummarizeMarks(total, marks)
	return &summary, nil
}
