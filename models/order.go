package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Order lifecycle values shared by every status alias.
const (
	OrderPending   = "pending"
	OrderConfirmed = "confirmed"
	OrderPreparing = "preparing"
	OrderReady     = "ready"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

const PaymentCashOnDelivery = "Cash on Delivery"

// OrderStatuses lists the values a dashboard may write.
var OrderStatuses = []string{
	OrderPending,
	OrderConfirmed,
	OrderPreparing,
	OrderReady,
	OrderDelivered,
	OrderCancelled,
}

// Order mirrors the hosted orders table. Status and rider references are
// stored under several aliases; read them through services.OrderStatus and
// services.RiderID, never directly.
type Order struct {
	ID              string         `gorm:"type:varchar(36);primaryKey" json:"id"`
	CustomerName    string         `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerPhone   string         `gorm:"type:varchar(20);not null;index" json:"customer_phone"`
	CustomerEmail   *string        `gorm:"type:varchar(255)" json:"customer_email,omitempty"`
	DeliveryAddress string         `gorm:"type:text;not null" json:"delivery_address"`
	Latitude        *float64       `json:"latitude,omitempty"`
	Longitude       *float64       `json:"longitude,omitempty"`
	BranchID        string         `gorm:"type:varchar(50);index" json:"branch_id"`
	Items           datatypes.JSON `json:"items"`
	TotalAmount     float64        `gorm:"type:decimal(10,2);not null;default:0" json:"total_amount"`
	PaymentMethod   string         `gorm:"type:varchar(50);not null;default:'Cash on Delivery'" json:"payment_method"`

	OrderStatus  *string `gorm:"type:varchar(20)" json:"order_status"`
	CurrentStage *string `gorm:"type:varchar(20)" json:"current_stage"`
	Status       *string `gorm:"type:varchar(20)" json:"status"`
	Stage        *string `gorm:"type:varchar(20)" json:"stage"`

	DeliveryPartnerID *string `gorm:"type:varchar(36);index" json:"delivery_partner_id"`
	DeliveryAgentID   *string `gorm:"type:varchar(36);index" json:"delivery_agent_id"`
	RiderID           *string `gorm:"type:varchar(36);index" json:"rider_id"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
