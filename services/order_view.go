package services

import (
	"github.com/yeremiapane/sangem-ordering/models"
)

// OrderView is an order as every surface should see it. The status and
// rider_id keys carry reconciled values and shadow the raw alias columns of
// the same name; the other aliases are kept as stored.
type OrderView struct {
	models.Order
	Items           []interface{} `json:"items"`
	Status          string        `json:"status"`
	RiderID         string        `json:"rider_id"`
	EffectiveStatus string        `json:"effective_status"`
	AssignedRiderID string        `json:"assigned_rider_id,omitempty"`
}

func NewOrderView(o models.Order) OrderView {
	return OrderView{
		Order:           o,
		Items:           NormalizeItems(o.Items),
		Status:          OrderStatus(&o),
		RiderID:         RiderID(&o),
		EffectiveStatus: OrderStatus(&o),
		AssignedRiderID: RiderID(&o),
	}
}

func NewOrderViews(orders []models.Order) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, NewOrderView(o))
	}
	return views
}
