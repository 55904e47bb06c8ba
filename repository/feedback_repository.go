package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yeremiapane/sangem-ordering/models"
)

type FeedbackRepository struct {
	db *gorm.DB
}

func (r *FeedbackRepository) List(ctx context.Context, branchID string) ([]models.Feedback, error) {
	q := r.db.WithContext(ctx).Model(&models.Feedback{})
	if branchID != "" {
		q = q.Where("branch_id = ?", branchID)
	}
	var feedback []models.Feedback
	if err := q.Order("created_at desc").Find(&feedback).Error; err != nil {
		return nil, err
	}
	return feedback, nil
}

func (r *FeedbackRepository) FindByID(ctx context.Context, id uint) (*models.Feedback, error) {
	var fb models.Feedback
	if err := r.db.WithContext(ctx).First(&fb, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &fb, nil
}

func (r *FeedbackRepository) Create(ctx context.Context, fb *models.Feedback) error {
	return r.db.WithContext(ctx).Create(fb).Error
}
