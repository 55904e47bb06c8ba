package reports_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/yeremiapane/sangem-ordering/models"
	"github.com/yeremiapane/sangem-ordering/reports"
	"github.com/yeremiapane/sangem-ordering/services"
)

func TestOverviewPDF(t *testing.T) {
	orders := []models.Order{
		{BranchID: "br1", TotalAmount: 1365, CreatedAt: time.Now()},
		{BranchID: "br2", TotalAmount: 420, CreatedAt: time.Now()},
	}
	ov := services.Summarize(orders, nil, nil, []models.Feedback{{Rating: 5}}, time.Now())

	var buf bytes.Buffer
	require.NoError(t, reports.OverviewPDF(&buf, ov, func(id string) string { return "Branch " + id }))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	assert.Greater(t, buf.Len(), 500)
}

func TestReferenceWorkbook(t *testing.T) {
	dishes := []models.Dish{
		{DishID: 1, BranchID: "br1", Name: "Haleem", Price: 300, Category: "Main Course"},
		{DishID: 2, BranchID: "br1", Name: "Irani Chai", Price: 40, Category: "Beverages"},
	}
	branches := models.BranchesWithNames(map[string]string{"br1": "Sangem Banjara"})

	var buf bytes.Buffer
	require.NoError(t, reports.WriteReferenceWorkbook(&buf, dishes, branches))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{reports.MenuSheet, reports.BranchSheet}, f.GetSheetList())

	name, err := f.GetCellValue(reports.MenuSheet, "C3")
	require.NoError(t, err)
	assert.Equal(t, "Irani Chai", name)

	rows, err := f.GetRows(reports.BranchSheet)
	require.NoError(t, err)
	assert.Len(t, rows, len(models.Branches)+1)
	assert.Equal(t, "Sangem Banjara", rows[1][1])
}
