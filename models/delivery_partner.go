package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PartnerActive     = "active"
	PartnerOnDelivery = "on_delivery"
	PartnerInactive   = "inactive"
)

var PartnerStatuses = []string{PartnerActive, PartnerOnDelivery, PartnerInactive}

type DeliveryPartner struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	PhoneNumber string    `gorm:"type:varchar(20)" json:"phone_number"`
	BranchID    string    `gorm:"type:varchar(50);index" json:"branch_id"`
	Status      string    `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	ProfileID   *string   `gorm:"type:varchar(36);index" json:"profile_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (p *DeliveryPartner) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
