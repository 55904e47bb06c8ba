package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yeremiapane/sangem-ordering/models"
)

type OrderRepository struct {
	db *gorm.DB
}

type OrderFilter struct {
	BranchID string
	// RiderID matches any of the three rider aliases.
	RiderID string
	Limit   int
}

func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&order).Error; err != nil {
		return nil, notFound(err)
	}
	return &order, nil
}

// List returns newest orders first.
func (r *OrderRepository) List(ctx context.Context, f OrderFilter) ([]models.Order, error) {
	q := r.db.WithContext(ctx).Model(&models.Order{})
	if f.BranchID != "" {
		q = q.Where("branch_id = ?", f.BranchID)
	}
	if f.RiderID != "" {
		q = q.Where("delivery_agent_id = ? OR delivery_partner_id = ? OR rider_id = ?", f.RiderID, f.RiderID, f.RiderID)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	var orders []models.Order
	if err := q.Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Updates applies fields in a single UPDATE statement.
func (r *OrderRepository) Updates(ctx context.Context, id string, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
