package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/yeremiapane/sangem-ordering/models"
	"github.com/yeremiapane/sangem-ordering/reports"
)

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reference.xlsx")
	dishes := []models.Dish{{BranchID: "br1", DishID: 1, Name: "Chicken 65", Category: "Starters", Price: 320}}

	require.NoError(t, writeWorkbook(path, dishes, models.Branches))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{reports.MenuSheet, reports.BranchSheet}, f.GetSheetList())

	rows, err := f.GetRows(reports.BranchSheet)
	require.NoError(t, err)
	assert.Len(t, rows, len(models.Branches)+1)
}

func TestWriteWorkbookBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "reference.xlsx")
	assert.Error(t, writeWorkbook(path, nil, models.Branches))
}
