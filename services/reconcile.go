package services

import (
	"github.com/yeremiapane/sangem-ordering/models"
)

// Column names that hold the same order status. Read in this order.
var StatusAliases = []string{"order_status", "current_stage", "status", "stage"}

// Column names that hold the same rider reference. Read in this order.
var RiderAliases = []string{"delivery_partner_id", "delivery_agent_id", "rider_id"}

// OrderStatus is the single way to read an order's status.
func OrderStatus(o *models.Order) string {
	for _, v := range []*string{o.OrderStatus, o.CurrentStage, o.Status, o.Stage} {
		if v != nil && *v != "" {
			return *v
		}
	}
	return models.OrderPending
}

// RiderID is the single way to read who delivers an order. Empty when unassigned.
func RiderID(o *models.Order) string {
	for _, v := range []*string{o.DeliveryPartnerID, o.DeliveryAgentID, o.RiderID} {
		if v != nil && *v != "" {
			return *v
		}
	}
	return ""
}

// AssignedTo reports whether any rider alias points at partnerID.
func AssignedTo(o *models.Order, partnerID string) bool {
	for _, v := range []*string{o.DeliveryPartnerID, o.DeliveryAgentID, o.RiderID} {
		if v != nil && *v == partnerID {
			return true
		}
	}
	return false
}

// StatusFields is the update payload that writes status to every alias.
func StatusFields(status string) map[string]interface{} {
	fields := make(map[string]interface{}, len(StatusAliases))
	for _, col := range StatusAliases {
		fields[col] = status
	}
	return fields
}

// RiderFields is the update payload that writes partnerID to every alias.
func RiderFields(partnerID string) map[string]interface{} {
	fields := make(map[string]interface{}, len(RiderAliases))
	for _, col := range RiderAliases {
		fields[col] = partnerID
	}
	return fields
}

// AssignmentFields sets the rider aliases and confirms the order in one payload.
func AssignmentFields(partnerID string) map[string]interface{} {
	fields := RiderFields(partnerID)
	for k, v := range StatusFields(models.OrderConfirmed) {
		fields[k] = v
	}
	return fields
}

// SetStatus mirrors StatusFields on an in-memory order.
func SetStatus(o *models.Order, status string) {
	o.OrderStatus = strPtr(status)
	o.CurrentStage = strPtr(status)
	o.Status = strPtr(status)
	o.Stage = strPtr(status)
}

func IsKnownStatus(status string) bool {
	return contains(models.OrderStatuses, status)
}

func IsKnownPartnerStatus(status string) bool {
	return contains(models.PartnerStatuses, status)
}

// IsClosed reports a terminal status.
func IsClosed(status string) bool {
	return status == models.OrderDelivered || status == models.OrderCancelled
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func strPtr(s string) *string {
	return &s
}
