package repository

import (
	"context"
	"errors"
	"exam_backend/internal/model"
	"exam_backend/internal/util"

	"gorm.io/gorm"
)

type AttemptRepository struct {
	DB *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{DB: db}
}

func (r *AttemptRepository) FindByID(ctx context.Context, id uint) (*model.Attempt, error) {
	var a model.Attempt
	err := r.DB.WithContext(ctx).First(&a, "attempt_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrAttemptNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// UpdateTallies overwrites the attempt's tallies; they are never incremented.
func (r *AttemptRepository) UpdateTallies(ctx context.Context, attemptID, userID uint, right, wrong int64) error {
	return r.DB.WithContext(ctx).Model(&model.Attempt{}).
		Where("attempt_id = ? AND user_id = ?", attemptID, userID).
		Updates(map[string]interface{}{
			"right_answers": right,
			"false_answers": wrong,
		}).Error
}
