package repository

import (
	"context"
	"errors"
	"exam_backend/internal/model"
	"exam_backend/internal/util"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) Create(ctx context.Context, quiz *model.Quiz) error {
	return r.DB.WithContext(ctx).Create(quiz).Error
}

func (r *QuizRepository) FindByID(ctx context.Context, id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.WithContext(ctx).First(&quiz, "quiz_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuizNotFound
	}
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *QuizRepository) FindUsername(ctx context.Context, userID uint) (string, error) {
	var user model.User
	err := r.DB.WithContext(ctx).Select("user_id", "username").First(&user, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", util.ErrUserNotFound
	}
	return user.Username, err
}

func (r *QuizRepository) FindSubjectName(ctx context.Context, subjectID uint) (string, error) {
	var subject model.Subject
	err := r.DB.WithContext(ctx).First(&subject, "subject_id = ?", subjectID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", util.ErrSubjectNotFound
	}
	return subject.SubjectName, err
}
