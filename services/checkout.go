package services

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/yeremiapane/sangem-ordering/models"
	"github.com/yeremiapane/sangem-ordering/utils"
)

type CheckoutItem struct {
	ID       string  `json:"id" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Quantity int     `json:"quantity" binding:"required,min=1"`
	Price    float64 `json:"price" binding:"min=0"`
	Discount float64 `json:"discount" binding:"min=0,max=100"`
}

type CheckoutRequest struct {
	CustomerName    string         `json:"customer_name" binding:"required"`
	CustomerPhone   string         `json:"customer_phone" binding:"required,phone10"`
	CustomerEmail   string         `json:"customer_email" binding:"omitempty,email"`
	DeliveryAddress string         `json:"delivery_address" binding:"required"`
	BranchID        string         `json:"branch_id" binding:"required"`
	Latitude        *float64       `json:"latitude" binding:"required,min=-90,max=90"`
	Longitude       *float64       `json:"longitude" binding:"required,min=-180,max=180"`
	Items           []CheckoutItem `json:"items" binding:"required,min=1,dive"`
}

// Validate repeats the checks a submission must pass before any write.
func (r *CheckoutRequest) Validate() error {
	if strings.TrimSpace(r.CustomerName) == "" {
		return invalid("customer_name", "name is required")
	}
	if !utils.IsValidPhone(r.CustomerPhone) {
		return invalid("customer_phone", "phone must be exactly 10 digits")
	}
	if strings.TrimSpace(r.DeliveryAddress) == "" {
		return invalid("delivery_address", "address is required")
	}
	if r.Latitude == nil || r.Longitude == nil {
		return invalid("location", "live location is required to place an order")
	}
	if *r.Latitude < -90 || *r.Latitude > 90 || *r.Longitude < -180 || *r.Longitude > 180 {
		return invalid("location", "location is out of range")
	}
	if _, ok := models.FindBranch(r.BranchID); !ok {
		return invalid("branch_id", "unknown branch")
	}
	if len(r.Items) == 0 {
		return invalid("items", "cart is empty")
	}
	for _, it := range r.Items {
		if it.Quantity < 1 {
			return invalid("items", "quantity must be at least 1")
		}
		if it.Price < 0 || it.Discount < 0 || it.Discount > 100 {
			return invalid("items", "invalid price or discount")
		}
	}
	return nil
}

func (r *CheckoutRequest) CartLines() []CartLine {
	lines := make([]CartLine, 0, len(r.Items))
	for _, it := range r.Items {
		lines = append(lines, CartLine{
			ID:       it.ID,
			Name:     it.Name,
			Quantity: it.Quantity,
			Price:    decimal.NewFromFloat(it.Price),
			Discount: decimal.NewFromFloat(it.Discount),
		})
	}
	return lines
}

// itemSnapshot is what an order keeps of each cart line.
type itemSnapshot struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

func snapshotItems(lines []CartLine) []itemSnapshot {
	items := make([]itemSnapshot, 0, len(lines))
	for _, l := range lines {
		items = append(items, itemSnapshot{
			ID:       l.ID,
			Name:     l.Name,
			Quantity: l.Quantity,
			Price:    l.UnitPrice().Round(2).InexactFloat64(),
		})
	}
	return items
}

// ProgressStage drives the storefront's post-checkout animation. It follows
// a fixed timer and says nothing about the real order status.
type ProgressStage struct {
	Stage    string `json:"stage"`
	AfterSec int    `json:"after_sec"`
}

var CheckoutProgress = []ProgressStage{
	{Stage: "confirmed", AfterSec: 0},
	{Stage: "preparing", AfterSec: 3},
	{Stage: "out-for-delivery", AfterSec: 6},
	{Stage: "complete", AfterSec: 9},
}

type CheckoutResult struct {
	Order    OrderView       `json:"order"`
	Totals   TotalsView      `json:"totals"`
	Progress []ProgressStage `json:"progress"`
}
