package config

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yeremiapane/sangem-ordering/models"
	"github.com/yeremiapane/sangem-ordering/utils"
)

type demoAccount struct {
	email    string
	password string
	role     string
	branchID string
}

var demoAccounts = []demoAccount{
	{"admin@sangem.com", "admin@123", models.RoleAdmin, ""},
	{"branch1@sangem.com", "branch@123", models.RoleBranch, "br1"},
	{"branch2@sangem.com", "branch@123", models.RoleBranch, "br2"},
	{"branch3@sangem.com", "branch@123", models.RoleBranch, "br3"},
	{"branch4@sangem.com", "branch@123", models.RoleBranch, "br4"},
	{"branch5@sangem.com", "branch@123", models.RoleBranch, "br5"},
}

// SeedDemo inserts the demo logins that do not exist yet.
func SeedDemo(db *gorm.DB) error {
	for _, acc := range demoAccounts {
		var existing models.Profile
		err := db.Where("email = ?", acc.email).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("lookup %s: %w", acc.email, err)
		}

		profile := models.Profile{Email: acc.email, Password: acc.password, Role: acc.role}
		if acc.branchID != "" {
			branchID := acc.branchID
			profile.BranchID = &branchID
		}
		if err := db.Create(&profile).Error; err != nil {
			return fmt.Errorf("seed %s: %w", acc.email, err)
		}
		utils.InfoLogger.Printf("Seeded demo account %s (role=%s)", acc.email, acc.role)
	}
	return nil
}
