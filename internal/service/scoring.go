package service

import (
	"exam_backend/internal/model"
	"exam_backend/internal/repository"
)

// TallyAttempt summarises an attempt after an answer batch. Unanswered counts
// distinct answered questions and is floored at zero.
func TallyAttempt(total int64, marks []repository.AnswerMark) model.AttemptSummary {
	summary := model.AttemptSummary{TotalQuestions: total}
	answered := make(map[uint]struct{}, len(marks))
	for _, m := range marks {
		if m.IsCorrect {
			summary.CorrectAnswers++
		} else {
			summary.WrongAnswers++
		}
		answered[m.QuestionID] = struct{}{}
	}
	summary.UnansweredQuestions = max(total-int64(len(answered)), 0)
	return summary
}

// SummarizeMarks is the read-only results view: unanswered is the total less
// every answer row, floored at zero.
func SummarizeMarks(total int64, marks []repository.AnswerMark) model.AttemptSummary {
	summary := model.AttemptSummary{TotalQuestions: total}
	for _, m := range marks {
		if m.IsCorrect {
			summary.CorrectAnswers++
		} else {
			summary.WrongAnswers++
		}
	}
	summary.UnansweredQuestions = max(total-(summary.CorrectAnswers+summary.WrongAnswers), 0)
	return summary
}
