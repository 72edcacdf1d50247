package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"exam_backend/internal/model"
	"exam_backend/internal/repository"
	"exam_backend/internal/util"
	"exam_backend/pkg/logger"
	"exam_backend/pkg/monitoring"
	"fmt"

	"go.uber.org/zap"
)

type AnswerService struct {
	Answers   *repository.AnswerRepository
	Questions *repository.QuestionRepository
	Attempts  *repository.AttemptRepository
}

func NewAnswerService(answers *repository.AnswerRepository, questions *repository.QuestionRepository, attempts *repository.AttemptRepository) *AnswerService {
	return &AnswerService{Answers: answers, Questions: questions, Attempts: attempts}
}

// AnswerInput is one submitted answer. IsCorrect is never accepted from the caller.
type AnswerInput struct {
	UserID     uint     `json:"user_id"`
	OptionID   uint     `json:"option_id"`
	QuestionID uint     `json:"question_id"`
	AttemptID  uint     `json:"attempt_id"`
	QuizID     uint     `json:"quiz_id,omitempty"`
	AnswerText *string  `json:"answer_text,omitempty"`
	Score      *float64 `json:"score,omitempty"`
	Comment    *string  `json:"comment,omitempty"`
}

func (a AnswerInput) complete() bool {
	return a.UserID != 0 && a.OptionID != 0 && a.QuestionID != 0 && a.AttemptID != 0
}

// AnswerResult is the outcome of a single entry; entries fail independently.
type AnswerResult struct {
	Status     string         `json:"status"`
	Message    string         `json:"message"`
	QuestionID uint           `json:"question_id"`
	Kind       util.ErrorKind `json:"kind,omitempty"`
	Data       *model.Answer  `json:"data,omitempty"`
	Details    interface{}    `json:"details,omitempty"`
}

type AnswerBatchResult struct {
	Results []AnswerResult       `json:"results"`
	Summary model.AttemptSummary `json:"data"`
}

// DecodeAnswers accepts a single answer object, an array of answers, or an
// object wrapping the array in "answers".
func DecodeAnswers(body []byte) ([]AnswerInput, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, util.NewValidationError("Request body is empty.")
	}

	if trimmed[0] == '[' {
		var entries []AnswerInput
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, util.NewValidationError("Invalid answers payload.").WithDetails(err.Error())
		}
		return entries, nil
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &probe); err != nil {
		return nil, util.NewValidationError("Invalid answers payload.").WithDetails(err.Error())
	}

	if raw, ok := probe["answers"]; ok {
		var entries []AnswerInput
		if err := json.Unmarshal(raw, &entries); err != nil {
			return nil, util.NewValidationError("The 'answers' field must be a non-empty array.").WithDetails(err.Error())
		}
		return entries, nil
	}

	var single AnswerInput
	if err := json.Unmarshal(trimmed, &single); err != nil {
		return nil, util.NewValidationError("Invalid answers payload.").WithDetails(err.Error())
	}
	return []AnswerInput{single}, nil
}

// RecordAnswers upserts each entry and then recomputes the tallies of the
// first entry's attempt. Entries are not applied in one transaction.
func (s *AnswerService) RecordAnswers(ctx context.Context, entries []AnswerInput) (*AnswerBatchResult, error) {
	if len(entries) == 0 {
		return nil, util.NewValidationError("The 'answers' field must be a non-empty array.")
	}

	var invalid []AnswerInput
	for _, e := range entries {
		if !e.complete() {
			invalid = append(invalid, e)
		}
	}
	if len(invalid) > 0 {
		return nil, util.NewValidationError("Some answers are missing required fields.").WithDetails(invalid)
	}

	first := entries[0]
	quizID, tallyAttempt, err := s.resolveQuiz(ctx, first)
	if err != nil {
		return nil, err
	}

	results := make([]AnswerResult, 0, len(entries))
	for _, e := range entries {
		res := s.recordOne(ctx, e)
		monitoring.AnswersRecorded.WithLabelValues(res.Status).Inc()
		results = append(results, res)
	}

	total, err := s.Questions.CountByQuiz(ctx, quizID)
	if err != nil {
		return nil, util.NewStoreError("Failed to fetch quiz questions", err)
	}
	marks, err := s.Answers.ListMarks(ctx, first.AttemptID, first.UserID)
	if err != nil {
		return nil, util.NewStoreError("Failed to fetch answers", err)
	}

	summary := TallyAttempt(total, marks)
	if tallyAttempt {
		if err := s.Attempts.UpdateTallies(ctx, first.AttemptID, first.UserID, summary.CorrectAnswers, summary.WrongAnswers); err != nil {
			return nil, util.NewStoreError("Failed to update attempts table", err)
		}
	}

	return &AnswerBatchResult{Results: results, Summary: summary}, nil
}

// resolveQuiz prefers the attempt row's quiz. Without a row the caller's
// quiz_id is used and there is nothing to write the tallies to.
func (s *AnswerService) resolveQuiz(ctx context.Context, first AnswerInput) (uint, bool, error) {
	attempt, err := s.Attempts.FindByID(ctx, first.AttemptID)
	switch {
	case err == nil:
		return attempt.QuizID, true, nil
	case errors.Is(err, util.ErrAttemptNotFound):
		if first.QuizID == 0 {
			return 0, false, util.NewNotFoundError(fmt.Sprintf("Attempt %d not found and no quiz_id supplied.", first.AttemptID))
		}
		logger.Log.Warn("attempt row missing, tallies not persisted",
			zap.Uint("attempt_id", first.AttemptID), zap.Uint("quiz_id", first.QuizID))
		return first.QuizID, false, nil
	default:
		return 0, false, util.NewStoreError("Failed to fetch attempt", err)
	}
}

func (s *AnswerService) recordOne(ctx context.Context, e AnswerInput) AnswerResult {
	option, err := s.Questions.FindOption(ctx, e.OptionID, e.QuestionID)
	if errors.Is(err, util.ErrOptionNotFound) {
		return AnswerResult{
			Status:     util.StatusError,
			Kind:       util.KindInvalidReference,
			QuestionID: e.QuestionID,
			Message:    fmt.Sprintf("Invalid option_id or question_id for answer with question_id %d.", e.QuestionID),
		}
	}
	if err != nil {
		return storeFailure(e.QuestionID, "Error checking option", err)
	}

	stored, err := s.Answers.Upsert(ctx, &model.Answer{
		UserID:     e.UserID,
		QuestionID: e.QuestionID,
		AttemptID:  e.AttemptID,
		OptionID:   e.OptionID,
		AnswerText: e.AnswerText,
		Score:      e.Score,
		IsCorrect:  option.IsCorrect,
		Comment:    e.Comment,
	})
	if err != nil {
		return storeFailure(e.QuestionID, "Error saving answer", err)
	}

	return AnswerResult{
		Status:     util.StatusSuccess,
		QuestionID: e.QuestionID,
		Message:    fmt.Sprintf("Answer for question_id %d saved successfully.", e.QuestionID),
		Data:       stored,
	}
}

func storeFailure(questionID uint, message string, err error) AnswerResult {
	logger.Log.Error(message, zap.Uint("question_id", questionID), zap.Error(err))
	return AnswerResult{
		Status:     util.StatusError,
		Kind:       util.KindStoreFailure,
		QuestionID: questionID,
		Message:    fmt.Sprintf("%s for question_id %d.", message, questionID),
		Details:    err.Error(),
	}
}
