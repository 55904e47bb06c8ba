package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yeremiapane/sangem-ordering/models"
)

type PartnerRepository struct {
	db *gorm.DB
}

func (r *PartnerRepository) List(ctx context.Context, branchID string) ([]models.DeliveryPartner, error) {
	q := r.db.WithContext(ctx).Model(&models.DeliveryPartner{})
	if branchID != "" {
		q = q.Where("branch_id = ?", branchID)
	}
	var partners []models.DeliveryPartner
	if err := q.Order("name").Find(&partners).Error; err != nil {
		return nil, err
	}
	return partners, nil
}

func (r *PartnerRepository) FindByID(ctx context.Context, id string) (*models.DeliveryPartner, error) {
	var partner models.DeliveryPartner
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&partner).Error; err != nil {
		return nil, notFound(err)
	}
	return &partner, nil
}

func (r *PartnerRepository) FindByProfileID(ctx context.Context, profileID string) (*models.DeliveryPartner, error) {
	var partner models.DeliveryPartner
	if err := r.db.WithContext(ctx).Where("profile_id = ?", profileID).Take(&partner).Error; err != nil {
		return nil, notFound(err)
	}
	return &partner, nil
}

// AnyAtBranch returns one partner of the branch with no ordering applied,
// so which one comes back is up to the database.
func (r *PartnerRepository) AnyAtBranch(ctx context.Context, branchID string) (*models.DeliveryPartner, error) {
	var partner models.DeliveryPartner
	if err := r.db.WithContext(ctx).Where("branch_id = ?", branchID).Take(&partner).Error; err != nil {
		return nil, notFound(err)
	}
	return &partner, nil
}

func (r *PartnerRepository) CountUnlinkedAtBranch(ctx context.Context, branchID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.DeliveryPartner{}).
		Where("branch_id = ? AND (profile_id IS NULL OR profile_id = '')", branchID).
		Count(&n).Error
	return n, err
}

func (r *PartnerRepository) Create(ctx context.Context, partner *models.DeliveryPartner) error {
	return r.db.WithContext(ctx).Create(partner).Error
}

func (r *PartnerRepository) Updates(ctx context.Context, id string, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&models.DeliveryPartner{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PartnerRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.DeliveryPartner{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
