package models

import (
	"time"

	"gorm.io/datatypes"
)

type Feedback struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	OrderNumber  string         `gorm:"type:varchar(50)" json:"order_number"`
	CustomerName string         `gorm:"type:varchar(255)" json:"customer_name"`
	FeedbackType string         `gorm:"type:varchar(50)" json:"feedback_type"`
	Rating       int            `gorm:"not null" json:"rating"`
	Message      string         `gorm:"type:text" json:"message"`
	BranchID     string         `gorm:"type:varchar(50);index" json:"branch_id"`
	Photos       datatypes.JSON `json:"photos,omitempty"`
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`
}

func (Feedback) TableName() string {
	return "feedback"
}
