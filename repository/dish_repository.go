package repository

import (
	"context"
	"fmt"
	"regexp"

	"gorm.io/gorm"

	"github.com/yeremiapane/sangem-ordering/models"
)

var branchTablePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

type DishRepository struct {
	db *gorm.DB
}

// List orders by branch then per-branch dish number. An empty branchID lists
// every branch.
func (r *DishRepository) List(ctx context.Context, branchID string) ([]models.Dish, error) {
	q := r.db.WithContext(ctx).Model(&models.Dish{})
	if branchID != "" {
		q = q.Where("branch_id = ?", branchID)
	}
	var dishes []models.Dish
	if err := q.Order("branch_id").Order("dish_id").Find(&dishes).Error; err != nil {
		return nil, err
	}
	return dishes, nil
}

// ListForMenu prefers the experimental dishes_<branchID> table and falls
// back to the shared dishes table.
func (r *DishRepository) ListForMenu(ctx context.Context, branchID string) ([]models.Dish, error) {
	if !branchTablePattern.MatchString(branchID) {
		return nil, fmt.Errorf("invalid branch id %q", branchID)
	}

	table := "dishes_" + branchID
	if r.db.Migrator().HasTable(table) {
		var dishes []models.Dish
		if err := r.db.WithContext(ctx).Table(table).Order("dish_id").Find(&dishes).Error; err != nil {
			return nil, err
		}
		for i := range dishes {
			if dishes[i].BranchID == "" {
				dishes[i].BranchID = branchID
			}
		}
		return dishes, nil
	}
	return r.List(ctx, branchID)
}

func (r *DishRepository) FindByID(ctx context.Context, id uint) (*models.Dish, error) {
	var dish models.Dish
	if err := r.db.WithContext(ctx).First(&dish, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &dish, nil
}

// NextDishID returns max(dish_id)+1 within the branch.
func (r *DishRepository) NextDishID(ctx context.Context, branchID string) (int, error) {
	var max int
	err := r.db.WithContext(ctx).Model(&models.Dish{}).
		Where("branch_id = ?", branchID).
		Select("COALESCE(MAX(dish_id), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

func (r *DishRepository) Create(ctx context.Context, dish *models.Dish) error {
	return r.db.WithContext(ctx).Create(dish).Error
}

func (r *DishRepository) Updates(ctx context.Context, id uint, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&models.Dish{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *DishRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Dish{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
