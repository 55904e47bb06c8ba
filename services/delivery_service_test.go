package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/sangem-ordering/hub"
	"github.com/yeremiapane/sangem-ordering/models"
	"github.com/yeremiapane/sangem-ordering/services"
)

func TestResolvePartner(t *testing.T) {
	db := setupTestDB(t)
	linked := seedPartner(t, db, models.DeliveryPartner{Name: "Linked", BranchID: "br1", ProfileID: str("rider-linked")})
	unlinked := seedPartner(t, db, models.DeliveryPartner{Name: "Unlinked", BranchID: "br2"})
	svc := services.NewDeliveryService(newRepos(db), nil)
	ctx := context.Background()

	t.Run("linked by profile id", func(t *testing.T) {
		p, err := svc.ResolvePartner(ctx, deliverySession("rider-linked", "br1"))
		require.NoError(t, err)
		assert.Equal(t, linked.ID, p.ID)
	})

	t.Run("falls back to a partner of the branch", func(t *testing.T) {
		p, err := svc.ResolvePartner(ctx, deliverySession("rider-new", "br2"))
		require.NoError(t, err)
		assert.Equal(t, unlinked.ID, p.ID)
	})

	t.Run("no partner at branch", func(t *testing.T) {
		_, err := svc.ResolvePartner(ctx, deliverySession("rider-new", "br3"))
		assert.ErrorIs(t, err, services.ErrNoPartner)
	})

	t.Run("no branch on the login", func(t *testing.T) {
		_, err := svc.ResolvePartner(ctx, deliverySession("rider-new", ""))
		assert.ErrorIs(t, err, services.ErrNoPartner)
	})

	t.Run("staff are not riders", func(t *testing.T) {
		_, err := svc.ResolvePartner(ctx, br1Session)
		assert.ErrorIs(t, err, services.ErrForbidden)
	})
}

func TestResolvePartnerAmbiguousBranchStillResolves(t *testing.T) {
	db := setupTestDB(t)
	a := seedPartner(t, db, models.DeliveryPartner{Name: "A", BranchID: "br4"})
	b := seedPartner(t, db, models.DeliveryPartner{Name: "B", BranchID: "br4"})
	svc := services.NewDeliveryService(newRepos(db), nil)

	p, err := svc.ResolvePartner(context.Background(), deliverySession("rider-x", "br4"))
	require.NoError(t, err)
	assert.Contains(t, []string{a.ID, b.ID}, p.ID)
}

func TestDeliveryDashboard(t *testing.T) {
	db := setupTestDB(t)
	partner := seedPartner(t, db, models.DeliveryPartner{Name: "Suresh", BranchID: "br1", ProfileID: str("rider-1"), Status: models.PartnerOnDelivery})
	other := seedPartner(t, db, models.DeliveryPartner{Name: "Kiran", BranchID: "br1"})
	now := time.Now()

	// legacy rows carry the rider under a single alias
	seedOrder(t, db, models.Order{DeliveryAgentID: str(partner.ID), CurrentStage: str("confirmed"), TotalAmount: 420})
	seedOrder(t, db, models.Order{RiderID: str(partner.ID), Status: str("delivered"), TotalAmount: 500, CreatedAt: now})
	seedOrder(t, db, models.Order{DeliveryPartnerID: str(partner.ID), Stage: str("delivered"), TotalAmount: 300, CreatedAt: now.Add(-48 * time.Hour)})
	seedOrder(t, db, models.Order{DeliveryPartnerID: str(partner.ID), OrderStatus: str("cancelled"), TotalAmount: 250, CreatedAt: now})
	seedOrder(t, db, models.Order{DeliveryPartnerID: str(other.ID), Status: str("delivered"), TotalAmount: 999, CreatedAt: now})

	svc := services.NewDeliveryService(newRepos(db), nil)
	dash, err := svc.Dashboard(context.Background(), deliverySession("rider-1", "br1"))
	require.NoError(t, err)

	assert.Equal(t, partner.ID, dash.Partner.ID)
	assert.Len(t, dash.Active, 1)
	assert.Len(t, dash.Done, 3)
	assert.Equal(t, services.DeliveryStats{Active: 1, Delivered: 2, TodayEarnings: 500}, dash.Stats)
}

func TestMarkDelivered(t *testing.T) {
	db := setupTestDB(t)
	partner := seedPartner(t, db, models.DeliveryPartner{Name: "Suresh", BranchID: "br1", ProfileID: str("rider-1"), Status: models.PartnerOnDelivery})
	order := seedOrder(t, db, models.Order{DeliveryAgentID: str(partner.ID), Status: str("confirmed")})
	events := &recorder{}
	svc := services.NewDeliveryService(newRepos(db), events)
	rider := deliverySession("rider-1", "br1")
	ctx := context.Background()

	view, err := svc.MarkDelivered(ctx, rider, order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderDelivered, view.EffectiveStatus)

	stored := reloadOrder(t, db, order.ID)
	for _, v := range []*string{stored.OrderStatus, stored.CurrentStage, stored.Status, stored.Stage} {
		if assert.NotNil(t, v) {
			assert.Equal(t, models.OrderDelivered, *v)
		}
	}
	var p models.DeliveryPartner
	require.NoError(t, db.Where("id = ?", partner.ID).First(&p).Error)
	assert.Equal(t, models.PartnerActive, p.Status)
	assert.Equal(t, []string{hub.EventOrderDelivered}, events.names())

	_, err = svc.MarkDelivered(ctx, rider, order.ID)
	assert.ErrorIs(t, err, services.ErrOrderClosed)
}

func TestMarkDeliveredRequiresAssignment(t *testing.T) {
	db := setupTestDB(t)
	seedPartner(t, db, models.DeliveryPartner{Name: "Suresh", BranchID: "br1", ProfileID: str("rider-1")})
	other := seedPartner(t, db, models.DeliveryPartner{Name: "Kiran", BranchID: "br1"})
	order := seedOrder(t, db, models.Order{RiderID: str(other.ID), Status: str("confirmed")})
	svc := services.NewDeliveryService(newRepos(db), nil)

	_, err := svc.MarkDelivered(context.Background(), deliverySession("rider-1", "br1"), order.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	stored := reloadOrder(t, db, order.ID)
	assert.Equal(t, "confirmed", services.OrderStatus(&stored))
}
