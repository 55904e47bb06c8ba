package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/sangem-ordering/models"
	"github.com/yeremiapane/sangem-ordering/services"
)

func TestOrderStatus(t *testing.T) {
	tests := []struct {
		name  string
		order models.Order
		want  string
	}{
		{"no alias set", models.Order{}, models.OrderPending},
		{"only stage", models.Order{Stage: str("ready")}, "ready"},
		{"order_status wins", models.Order{OrderStatus: str("confirmed"), Status: str("ready")}, "confirmed"},
		{"empty aliases skipped", models.Order{OrderStatus: str(""), CurrentStage: str("preparing"), Status: str("ready")}, "preparing"},
		{"status before stage", models.Order{Status: str("delivered"), Stage: str("pending")}, "delivered"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.OrderStatus(&tt.order))
		})
	}
}

func TestRiderID(t *testing.T) {
	assert.Equal(t, "", services.RiderID(&models.Order{}))
	assert.Equal(t, "c", services.RiderID(&models.Order{RiderID: str("c")}))
	assert.Equal(t, "b", services.RiderID(&models.Order{DeliveryAgentID: str("b"), RiderID: str("c")}))
	assert.Equal(t, "a", services.RiderID(&models.Order{DeliveryPartnerID: str("a"), DeliveryAgentID: str("b")}))
	assert.Equal(t, "b", services.RiderID(&models.Order{DeliveryPartnerID: str(""), DeliveryAgentID: str("b")}))
}

func TestAssignedToMatchesAnyAlias(t *testing.T) {
	o := models.Order{DeliveryAgentID: str("p-1"), RiderID: str("p-2")}
	assert.True(t, services.AssignedTo(&o, "p-1"))
	assert.True(t, services.AssignedTo(&o, "p-2"))
	assert.False(t, services.AssignedTo(&o, "p-3"))
	assert.False(t, services.AssignedTo(&models.Order{}, ""))
}

func TestStatusAndAssignmentFields(t *testing.T) {
	fields := services.StatusFields("ready")
	assert.Len(t, fields, 4)
	for _, col := range services.StatusAliases {
		assert.Equal(t, "ready", fields[col])
	}

	assign := services.AssignmentFields("p-9")
	assert.Len(t, assign, 7)
	for _, col := range services.RiderAliases {
		assert.Equal(t, "p-9", assign[col])
	}
	for _, col := range services.StatusAliases {
		assert.Equal(t, models.OrderConfirmed, assign[col])
	}
}

func TestSetStatusMirrorsEveryAlias(t *testing.T) {
	o := models.Order{Stage: str("pending")}
	services.SetStatus(&o, models.OrderReady)
	for _, v := range []*string{o.OrderStatus, o.CurrentStage, o.Status, o.Stage} {
		if assert.NotNil(t, v) {
			assert.Equal(t, models.OrderReady, *v)
		}
	}
}

func TestKnownStatuses(t *testing.T) {
	assert.True(t, services.IsKnownStatus("preparing"))
	assert.False(t, services.IsKnownStatus("shipped"))
	assert.False(t, services.IsKnownStatus(""))
	assert.True(t, services.IsKnownPartnerStatus("on_delivery"))
	assert.False(t, services.IsKnownPartnerStatus("busy"))
	assert.True(t, services.IsClosed(models.OrderDelivered))
	assert.True(t, services.IsClosed(models.OrderCancelled))
	assert.False(t, services.IsClosed(models.OrderReady))
}
