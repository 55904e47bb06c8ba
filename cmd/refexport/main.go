// Command refexport writes the menu and branch reference data to an xlsx
// workbook for offline editing.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/yeremiapane/sangem-ordering/config"
	"github.com/yeremiapane/sangem-ordering/models"
	"github.com/yeremiapane/sangem-ordering/reports"
	"github.com/yeremiapane/sangem-ordering/repository"
	"github.com/yeremiapane/sangem-ordering/session"
	"github.com/yeremiapane/sangem-ordering/utils"
)

func main() {
	out := flag.String("out", "sangem-reference.xlsx", "output workbook path")
	branch := flag.String("branch", "", "export a single branch")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to load config: %v", err)
	}
	utils.InitLoggerWith(cfg.LogOptions())

	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	ctx := context.Background()
	dishes, err := repository.New(db).Dishes.List(ctx, *branch)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to load dishes: %v", err)
	}
	names, err := session.NewStore(db).LoadBranchNames(ctx)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to load branch names: %v", err)
	}

	if err := writeWorkbook(*out, dishes, models.BranchesWithNames(names)); err != nil {
		utils.ErrorLogger.Fatalf("Failed to export: %v", err)
	}
	utils.InfoLogger.Printf("Exported %d dishes and %d branches to %s", len(dishes), len(models.Branches), *out)
}

// writeWorkbook reports success only once the file has been flushed and closed.
func writeWorkbook(path string, dishes []models.Dish, branches []models.Branch) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := reports.WriteReferenceWorkbook(f, dishes, branches); err != nil {
		f.Close()
		return fmt.Errorf("write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
