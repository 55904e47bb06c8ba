package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yeremiapane/sangem-ordering/models"
	"github.com/yeremiapane/sangem-ordering/repository"
	"github.com/yeremiapane/sangem-ordering/session"
	"github.com/yeremiapane/sangem-ordering/utils"
)

type DishInput struct {
	BranchID    string  `json:"branch_id"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"min=0"`
	Category    string  `json:"category"`
	Cuisine     string  `json:"cuisine"`
	DietaryType string  `json:"dietary_type"`
	MealType    string  `json:"meal_type"`
	Rating      float64 `json:"rating" binding:"min=0,max=5"`
	PrepTime    int     `json:"prep_time" binding:"min=0"`
	ImageURL    string  `json:"image_url"`
}

type DishUpdate struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,min=0"`
	Category    *string  `json:"category"`
	Cuisine     *string  `json:"cuisine"`
	DietaryType *string  `json:"dietary_type"`
	MealType    *string  `json:"meal_type"`
	Rating      *float64 `json:"rating" binding:"omitempty,min=0,max=5"`
	PrepTime    *int     `json:"prep_time" binding:"omitempty,min=0"`
	ImageURL    *string  `json:"image_url"`
}

type DishService struct {
	repos *repository.Repositories
}

func NewDishService(repos *repository.Repositories) *DishService {
	return &DishService{repos: repos}
}

// List returns dishes by branch then dish number. Admins may pass a branch
// filter; branch staff always see their own.
func (s *DishService) List(ctx context.Context, sess session.Session, branchID string) ([]models.Dish, error) {
	switch {
	case sess.IsAdmin():
		return s.repos.Dishes.List(ctx, branchID)
	case sess.IsBranch():
		return s.repos.Dishes.List(ctx, sess.BranchID)
	}
	return nil, ErrForbidden
}

// Create numbers the dish max(dish_id)+1 inside its branch.
func (s *DishService) Create(ctx context.Context, sess session.Session, in DishInput) (*models.Dish, error) {
	branchID := in.BranchID
	switch {
	case sess.IsBranch():
		branchID = sess.BranchID
	case !sess.IsAdmin():
		return nil, ErrForbidden
	}
	if _, ok := models.FindBranch(branchID); !ok {
		return nil, invalid("branch_id", "unknown branch")
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, invalid("name", "name is required")
	}
	if in.Category != "" && !contains(models.DishCategories, in.Category) {
		return nil, invalid("category", "unknown category")
	}

	dish := &models.Dish{
		BranchID:    branchID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Cuisine:     in.Cuisine,
		DietaryType: in.DietaryType,
		MealType:    in.MealType,
		Rating:      in.Rating,
		PrepTime:    in.PrepTime,
		ImageURL:    in.ImageURL,
	}
	err := s.repos.Tx(func(tx *repository.Repositories) error {
		next, err := tx.Dishes.NextDishID(ctx, branchID)
		if err != nil {
			return fmt.Errorf("next dish id: %w", err)
		}
		dish.DishID = next
		return tx.Dishes.Create(ctx, dish)
	})
	if err != nil {
		return nil, err
	}
	utils.InfoLogger.Printf("Dish %d/%s created in %s by %s", dish.DishID, dish.Name, branchID, sess.Email)
	return dish, nil
}

// Update edits a dish. Price is only applied for admins; branch edits drop it.
func (s *DishService) Update(ctx context.Context, sess session.Session, id uint, in DishUpdate) (*models.Dish, error) {
	dish, err := s.scopedDish(ctx, sess, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, invalid("name", "name is required")
		}
		fields["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Category != nil {
		if *in.Category != "" && !contains(models.DishCategories, *in.Category) {
			return nil, invalid("category", "unknown category")
		}
		fields["category"] = *in.Category
	}
	if in.Cuisine != nil {
		fields["cuisine"] = *in.Cuisine
	}
	if in.DietaryType != nil {
		fields["dietary_type"] = *in.DietaryType
	}
	if in.MealType != nil {
		fields["meal_type"] = *in.MealType
	}
	if in.Rating != nil {
		fields["rating"] = *in.Rating
	}
	if in.PrepTime != nil {
		fields["prep_time"] = *in.PrepTime
	}
	if in.ImageURL != nil {
		fields["image_url"] = *in.ImageURL
	}
	if in.Price != nil {
		if sess.IsAdmin() {
			fields["price"] = *in.Price
		} else {
			utils.InfoLogger.Debugf("price change on dish %d ignored for %s", dish.ID, sess.Email)
		}
	}

	if len(fields) > 0 {
		if err := s.repos.Dishes.Updates(ctx, dish.ID, fields); err != nil {
			return nil, fmt.Errorf("update dish: %w", err)
		}
	}
	return s.repos.Dishes.FindByID(ctx, dish.ID)
}

func (s *DishService) Delete(ctx context.Context, sess session.Session, id uint) error {
	dish, err := s.scopedDish(ctx, sess, id)
	if err != nil {
		return err
	}
	return s.repos.Dishes.Delete(ctx, dish.ID)
}

func (s *DishService) scopedDish(ctx context.Context, sess session.Session, id uint) (*models.Dish, error) {
	if !sess.IsAdmin() && !sess.IsBranch() {
		return nil, ErrForbidden
	}
	dish, err := s.repos.Dishes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !sess.CanSeeBranch(dish.BranchID) {
		return nil, ErrNotFound
	}
	return dish, nil
}
