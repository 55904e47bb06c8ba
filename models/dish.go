package models

import "time"

var DishCategories = []string{
	"Starters",
	"Main Course",
	"Biryani",
	"Breads",
	"Desserts",
	"Beverages",
}

// Dish is one catalog entry of a branch. DishID is numbered per branch.
type Dish struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	DishID      int       `gorm:"not null;index:idx_dish_branch" json:"dish_id"`
	BranchID    string    `gorm:"type:varchar(50);not null;index:idx_dish_branch" json:"branch_id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"type:decimal(10,2);not null;default:0" json:"price"`
	Category    string    `gorm:"type:varchar(50)" json:"category"`
	Cuisine     string    `gorm:"type:varchar(100)" json:"cuisine"`
	DietaryType string    `gorm:"type:varchar(50)" json:"dietary_type"`
	MealType    string    `gorm:"type:varchar(50)" json:"meal_type"`
	Rating      float64   `gorm:"type:decimal(3,1);default:0" json:"rating"`
	PrepTime    int       `json:"prep_time"`
	ImageURL    string    `gorm:"type:varchar(500)" json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
