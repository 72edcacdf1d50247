package repository

import (
	"context"
	"exam_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommentRepository struct {
	DB *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{DB: db}
}

// Upsert writes the comment keyed by (question_id, attempt_id, student_id).
func (r *CommentRepository) Upsert(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	db := r.DB.WithContext(ctx)
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "question_id"}, {Name: "attempt_id"}, {Name: "student_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"comment_text", "updated_at"}),
	}).Create(comment).Error
	if err != nil {
		return nil, err
	}

	var stored model.Comment
	err = db.Where("question_id = ? AND attempt_id = ? AND student_id = ?",
		comment.QuestionID, comment.AttemptID, comment.StudentID).First(&stored).Error
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *CommentRepository) FindByKey(ctx context.Context, questionID, attemptID, studentID uint) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.DB.WithContext(ctx).
		Where("question_id = ? AND attempt_id = ? AND student_id = ?", questionID, attemptID, studentID).
		Find(&comments).Error
	return comments, err
}
