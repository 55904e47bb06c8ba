package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/sangem-ordering/hub"
	"github.com/yeremiapane/sangem-ordering/models"
	"github.com/yeremiapane/sangem-ordering/services"
)

func validCheckout() services.CheckoutRequest {
	lat, lng := 17.4126, 78.4482
	return services.CheckoutRequest{
		CustomerName:    "Asha Rao",
		CustomerPhone:   "9876543210",
		DeliveryAddress: "Plot 14, Road No. 12, Banjara Hills",
		BranchID:        "br1",
		Latitude:        &lat,
		Longitude:       &lng,
		Items: []services.CheckoutItem{
			{ID: "1", Name: "Mutton Biryani", Quantity: 1, Price: 1000},
			{ID: "2", Name: "Gulab Jamun", Quantity: 2, Price: 200, Discount: 25},
		},
	}
}

type fakeNotifier struct {
	orders chan models.Order
	err    error
}

func (f *fakeNotifier) NotifyNewOrder(_ context.Context, order models.Order) error {
	f.orders <- order
	return f.err
}

func TestPlaceOrder(t *testing.T) {
	db := setupTestDB(t)
	events := &recorder{}
	notifier := &fakeNotifier{orders: make(chan models.Order, 1)}
	svc := services.NewOrderService(newRepos(db), events, notifier, services.OrderLimits{})

	result, err := svc.PlaceOrder(context.Background(), validCheckout())
	require.NoError(t, err)

	assert.Equal(t, services.TotalsView{Subtotal: 1300, Tax: 65, Total: 1365}, result.Totals)
	assert.Equal(t, services.CheckoutProgress, result.Progress)
	assert.Equal(t, models.OrderPending, result.Order.EffectiveStatus)
	assert.Len(t, result.Order.Items, 2)

	stored := reloadOrder(t, db, result.Order.ID)
	assert.Equal(t, models.PaymentCashOnDelivery, stored.PaymentMethod)
	assert.Equal(t, 1365.0, stored.TotalAmount)
	assert.Nil(t, stored.CustomerEmail)
	for _, v := range []*string{stored.OrderStatus, stored.CurrentStage, stored.Status, stored.Stage} {
		if assert.NotNil(t, v) {
			assert.Equal(t, models.OrderPending, *v)
		}
	}

	var items []map[string]interface{}
	require.NoError(t, json.Unmarshal(stored.Items, &items))
	require.Len(t, items, 2)
	assert.Equal(t, "Gulab Jamun", items[1]["name"])
	assert.Equal(t, float64(2), items[1]["quantity"])
	assert.Equal(t, float64(150), items[1]["price"])
	assert.NotContains(t, items[1], "discount")

	assert.Equal(t, []string{hub.EventOrderCreated}, events.names())
	assert.Equal(t, "br1", events.last().BranchID)

	select {
	case o := <-notifier.orders:
		assert.Equal(t, stored.ID, o.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("notifier was not called")
	}
}

func TestPlaceOrderNotifierFailureDoesNotFailCheckout(t *testing.T) {
	db := setupTestDB(t)
	notifier := &fakeNotifier{orders: make(chan models.Order, 1), err: errors.New("telegram down")}
	svc := services.NewOrderService(newRepos(db), nil, notifier, services.OrderLimits{})

	result, err := svc.PlaceOrder(context.Background(), validCheckout())
	require.NoError(t, err)
	assert.NotEmpty(t, result.Order.ID)
	<-notifier.orders
}

func TestPlaceOrderRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *services.CheckoutRequest)
		field  string
	}{
		{"short phone", func(r *services.CheckoutRequest) { r.CustomerPhone = "98765" }, "customer_phone"},
		{"phone with letters", func(r *services.CheckoutRequest) { r.CustomerPhone = "98765abcde" }, "customer_phone"},
		{"eleven digits", func(r *services.CheckoutRequest) { r.CustomerPhone = "98765432101" }, "customer_phone"},
		{"blank name", func(r *services.CheckoutRequest) { r.CustomerName = "   " }, "customer_name"},
		{"blank address", func(r *services.CheckoutRequest) { r.DeliveryAddress = "" }, "delivery_address"},
		{"no location", func(r *services.CheckoutRequest) { r.Latitude = nil }, "location"},
		{"location out of range", func(r *services.CheckoutRequest) { lat := 120.0; r.Latitude = &lat }, "location"},
		{"unknown branch", func(r *services.CheckoutRequest) { r.BranchID = "br9" }, "branch_id"},
		{"empty cart", func(r *services.CheckoutRequest) { r.Items = nil }, "items"},
		{"zero quantity", func(r *services.CheckoutRequest) { r.Items[0].Quantity = 0 }, "items"},
		{"discount over 100", func(r *services.CheckoutRequest) { r.Items[1].Discount = 150 }, "items"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			events := &recorder{}
			svc := services.NewOrderService(newRepos(db), events, nil, services.OrderLimits{})

			req := validCheckout()
			tt.mutate(&req)
			_, err := svc.PlaceOrder(context.Background(), req)

			require.Error(t, err)
			assert.True(t, services.IsValidation(err))
			var ve *services.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.field, ve.Field)

			var count int64
			db.Model(&models.Order{}).Count(&count)
			assert.Zero(t, count)
			assert.Empty(t, events.names())
		})
	}
}

func TestPlaceOrderKeepsEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewOrderService(newRepos(db), nil, nil, services.OrderLimits{})

	req := validCheckout()
	req.CustomerEmail = " asha@example.com "
	result, err := svc.PlaceOrder(context.Background(), req)
	require.NoError(t, err)

	stored := reloadOrder(t, db, result.Order.ID)
	if assert.NotNil(t, stored.CustomerEmail) {
		assert.Equal(t, "asha@example.com", *stored.CustomerEmail)
	}
}
