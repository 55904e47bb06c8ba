package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/sangem-ordering/models"
	"github.com/yeremiapane/sangem-ordering/services"
)

var sampleMenu = []models.Dish{
	{DishID: 1, Name: "Paneer Tikka", Description: "Char-grilled cottage cheese", Price: 280, Cuisine: "North Indian", DietaryType: "veg", MealType: "lunch", Rating: 4.5},
	{DishID: 2, Name: "Hyderabadi Chicken Biryani", Description: "Dum cooked", Price: 350, Cuisine: "Hyderabadi", DietaryType: "non-veg", MealType: "dinner", Rating: 4.8},
	{DishID: 3, Name: "Masala Dosa", Description: "Crisp crepe with potato", Price: 120, Cuisine: "South Indian", DietaryType: "veg", MealType: "breakfast", Rating: 4.2},
	{DishID: 4, Name: "Royal Thali", Description: "Chef's grand platter", Price: 2500, Cuisine: "North Indian", DietaryType: "veg", MealType: "dinner", Rating: 4.9},
}

func dishNames(dishes []models.Dish) []string {
	names := make([]string, 0, len(dishes))
	for _, d := range dishes {
		names = append(names, d.Name)
	}
	return names
}

func TestFilterMenu(t *testing.T) {
	tests := []struct {
		name   string
		filter services.MenuFilter
		want   []string
	}{
		{"default price cap", services.MenuFilter{}, []string{"Paneer Tikka", "Hyderabadi Chicken Biryani", "Masala Dosa"}},
		{"raised price cap", services.MenuFilter{MaxPrice: 3000}, []string{"Paneer Tikka", "Hyderabadi Chicken Biryani", "Masala Dosa", "Royal Thali"}},
		{"search name", services.MenuFilter{Search: "biryani"}, []string{"Hyderabadi Chicken Biryani"}},
		{"search description", services.MenuFilter{Search: "POTATO"}, []string{"Masala Dosa"}},
		{"search cuisine", services.MenuFilter{Search: "south"}, []string{"Masala Dosa"}},
		{"cuisine facet", services.MenuFilter{Cuisines: []string{"north indian"}}, []string{"Paneer Tikka"}},
		{"dietary facet", services.MenuFilter{DietaryTypes: []string{"non-veg"}}, []string{"Hyderabadi Chicken Biryani"}},
		{"meal facets are ORed", services.MenuFilter{MealTypes: []string{"breakfast", "lunch"}}, []string{"Paneer Tikka", "Masala Dosa"}},
		{"min price", services.MenuFilter{MinPrice: 200}, []string{"Paneer Tikka", "Hyderabadi Chicken Biryani"}},
		{"min rating", services.MenuFilter{MinRating: 4.6}, []string{"Hyderabadi Chicken Biryani"}},
		{"price ascending", services.MenuFilter{Sort: services.SortPriceAsc}, []string{"Masala Dosa", "Paneer Tikka", "Hyderabadi Chicken Biryani"}},
		{"price descending", services.MenuFilter{Sort: services.SortPriceDesc}, []string{"Hyderabadi Chicken Biryani", "Paneer Tikka", "Masala Dosa"}},
		{"rating descending", services.MenuFilter{Sort: services.SortRatingDesc}, []string{"Hyderabadi Chicken Biryani", "Paneer Tikka", "Masala Dosa"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dishNames(services.FilterMenu(sampleMenu, tt.filter)))
		})
	}
}

func TestMenuReadsSharedTable(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.Dish{DishID: 1, BranchID: "br1", Name: "Haleem", Price: 300}).Error)
	require.NoError(t, db.Create(&models.Dish{DishID: 1, BranchID: "br2", Name: "Lukhmi", Price: 90}).Error)
	svc := services.NewMenuService(newRepos(db))

	dishes, err := svc.Menu(context.Background(), "br1", services.MenuFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Haleem"}, dishNames(dishes))

	_, err = svc.Menu(context.Background(), "br9", services.MenuFilter{})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestMenuPrefersBranchTable(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.Dish{DishID: 1, BranchID: "br3", Name: "Shared Dish", Price: 100}).Error)
	require.NoError(t, db.Exec(`CREATE TABLE dishes_br3 (
		id integer primary key, dish_id integer, branch_id text, name text, description text,
		price real, category text, cuisine text, dietary_type text, meal_type text,
		rating real, prep_time integer, image_url text, created_at datetime, updated_at datetime)`).Error)
	require.NoError(t, db.Exec(`INSERT INTO dishes_br3 (id, dish_id, name, price, rating) VALUES (1, 1, 'Irani Chai', 40, 4.7)`).Error)
	svc := services.NewMenuService(newRepos(db))

	dishes, err := svc.Menu(context.Background(), "br3", services.MenuFilter{})
	require.NoError(t, err)
	require.Len(t, dishes, 1)
	assert.Equal(t, "Irani Chai", dishes[0].Name)
	assert.Equal(t, "br3", dishes[0].BranchID)
}
