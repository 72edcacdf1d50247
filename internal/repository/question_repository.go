package repository

import (
	"context"
	"errors"
	"exam_backend/internal/model"
	"exam_backend/internal/util"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

// CreateQuestions inserts the batch in one statement and fills in the ids.
func (r *QuestionRepository) CreateQuestions(ctx context.Context, questions []model.Question) error {
	if len(questions) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).Omit("Options").Create(&questions).Error
}

func (r *QuestionRepository) CreateOptions(ctx context.Context, options []model.Option) error {
	if len(options) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).Create(&options).Error
}

func (r *QuestionRepository) CountByQuiz(ctx context.Context, quizID uint) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Question{}).Where("quiz_id = ?", quizID).Count(&count).Error
	return count, err
}

func (r *QuestionRepository) ListByQuiz(ctx context.Context, quizID uint) ([]model.Question, error) {
	var qs []model.Question
	err := r.DB.WithContext(ctx).Where("quiz_id = ?", quizID).Order("question_id asc").Find(&qs).Error
	return qs, err
}

func (r *QuestionRepository) ListOptions(ctx context.Context, questionID uint) ([]model.Option, error) {
	var opts []model.Option
	err := r.DB.WithContext(ctx).Where("question_id = ?", questionID).Order("option_id asc").Find(&opts).Error
	return opts, err
}

// FindOption returns the option only if it belongs to the question.
func (r *QuestionRepository) FindOption(ctx context.Context, optionID, questionID uint) (*model.Option, error) {
	var opt model.Option
	err := r.DB.WithContext(ctx).
		Where("option_id = ? AND question_id = ?", optionID, questionID).
		First(&opt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrOptionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &opt, nil
}
