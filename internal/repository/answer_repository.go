package repository

import (
	"context"
	"exam_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AnswerRepository struct {
	DB *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) *AnswerRepository {
	return &AnswerRepository{DB: db}
}

// AnswerMark is the part of an answer row that scoring needs.
type AnswerMark struct {
	QuestionID uint
	IsCorrect  bool
}

// Upsert writes the answer keyed by (user_id, question_id, attempt_id) in a
// single statement and returns the stored row.
func (r *AnswerRepository) Upsert(ctx context.Context, answer *model.Answer) (*model.Answer, error) {
	db := r.DB.WithContext(ctx)
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "question_id"}, {Name: "attempt_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"option_id", "answer_text", "score", "is_correct", "comment", "updated_at",
		}),
	}).Create(answer).Error
	if err != nil {
		return nil, err
	}

	var stored model.Answer
	err = db.Where("user_id = ? AND question_id = ? AND attempt_id = ?",
		answer.UserID, answer.QuestionID, answer.AttemptID).First(&stored).Error
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *AnswerRepository) ListMarks(ctx context.Context, attemptID, userID uint) ([]AnswerMark, error) {
	var marks []AnswerMark
	err := r.DB.WithContext(ctx).Model(&model.Answer{}).
		Select("question_id", "is_correct").
		Where("attempt_id = ? AND user_id = ?", attemptID, userID).
		Scan(&marks).Error
	return marks, err
}

func (r *AnswerRepository) CountByKey(ctx context.Context, userID, questionID, attemptID uint) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Answer{}).
		Where("user_id = ? AND question_id = ? AND attempt_id = ?", userID, questionID, attemptID).
		Count(&count).Error
	return count, err
}
