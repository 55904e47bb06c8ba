package reports

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/yeremiapane/sangem-ordering/models"
)

const (
	MenuSheet   = "Menu Items"
	BranchSheet = "Branches"
)

var menuHeader = []interface{}{
	"Item ID", "Branch", "Name", "Description", "Price", "Category",
	"Cuisine", "Food Type", "Meal Type", "Rating", "Prep Time (min)", "Image Path",
}

var branchHeader = []interface{}{
	"Branch ID", "Name", "Address", "Phone", "Latitude", "Longitude", "Opening Hours",
}

// ReferenceWorkbook lays out dishes and branches for offline editing.
func ReferenceWorkbook(dishes []models.Dish, branches []models.Branch) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", MenuSheet)

	if err := f.SetSheetRow(MenuSheet, "A1", &menuHeader); err != nil {
		return nil, err
	}
	for i, d := range dishes {
		row := []interface{}{
			d.DishID, d.BranchID, d.Name, d.Description, d.Price, d.Category,
			d.Cuisine, d.DietaryType, d.MealType, d.Rating, d.PrepTime, d.ImageURL,
		}
		if err := f.SetSheetRow(MenuSheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return nil, err
		}
	}

	if _, err := f.NewSheet(BranchSheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(BranchSheet, "A1", &branchHeader); err != nil {
		return nil, err
	}
	for i, b := range branches {
		row := []interface{}{b.ID, b.Name, b.Address, b.Phone, b.Latitude, b.Longitude, b.OpeningHours}
		if err := f.SetSheetRow(BranchSheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return nil, err
		}
	}

	if err := f.SetColWidth(MenuSheet, "C", "D", 32); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(BranchSheet, "C", "C", 40); err != nil {
		return nil, err
	}
	return f, nil
}

// WriteReferenceWorkbook builds the workbook and streams it to w.
func WriteReferenceWorkbook(w io.Writer, dishes []models.Dish, branches []models.Branch) error {
	f, err := ReferenceWorkbook(dishes, branches)
	if err != nil {
		return fmt.Errorf("build workbook: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
