package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/yeremiapane/sangem-ordering/hub"
	"github.com/yeremiapane/sangem-ordering/models"
	"github.com/yeremiapane/sangem-ordering/repository"
	"github.com/yeremiapane/sangem-ordering/session"
	"github.com/yeremiapane/sangem-ordering/utils"
)

type DeliveryStats struct {
	Active        int     `json:"active"`
	Delivered     int     `json:"delivered"`
	TodayEarnings float64 `json:"today_earnings"`
}

type DeliveryDashboard struct {
	Partner models.DeliveryPartner `json:"partner"`
	Active  []OrderView            `json:"active"`
	Done    []OrderView            `json:"done"`
	Stats   DeliveryStats          `json:"stats"`
}

type DeliveryService struct {
	repos  *repository.Repositories
	events Publisher
	now    func() time.Time
}

func NewDeliveryService(repos *repository.Repositories, events Publisher) *DeliveryService {
	if events == nil {
		events = nopPublisher{}
	}
	return &DeliveryService{repos: repos, events: events, now: time.Now}
}

// ResolvePartner finds the roster entry behind a delivery login: the partner
// linked by profile_id, else some partner of the caller's branch.
func (s *DeliveryService) ResolvePartner(ctx context.Context, sess session.Session) (*models.DeliveryPartner, error) {
	if !sess.IsDelivery() {
		return nil, ErrForbidden
	}

	partner, err := s.repos.Partners.FindByProfileID(ctx, sess.ID)
	if err == nil {
		return partner, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("find partner by profile: %w", err)
	}
	if sess.BranchID == "" {
		return nil, ErrNoPartner
	}

	// Ambiguous when the branch has several unlinked partners; kept as is
	// until accounts are always linked.
	if n, err := s.repos.Partners.CountUnlinkedAtBranch(ctx, sess.BranchID); err == nil && n > 1 {
		utils.ErrorLogger.Warnf("login %s has no linked partner; branch %s has %d unlinked partners, picking one", sess.Email, sess.BranchID, n)
	}
	partner, err = s.repos.Partners.AnyAtBranch(ctx, sess.BranchID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNoPartner
	}
	if err != nil {
		return nil, fmt.Errorf("find partner by branch: %w", err)
	}
	return partner, nil
}

func (s *DeliveryService) Dashboard(ctx context.Context, sess session.Session) (*DeliveryDashboard, error) {
	partner, err := s.ResolvePartner(ctx, sess)
	if err != nil {
		return nil, err
	}

	orders, err := s.repos.Orders.List(ctx, repository.OrderFilter{RiderID: partner.ID})
	if err != nil {
		return nil, fmt.Errorf("list partner orders: %w", err)
	}

	dash := &DeliveryDashboard{Partner: *partner, Active: []OrderView{}, Done: []OrderView{}}
	today := s.now().UTC().Format("2006-01-02")
	earnings := decimal.Zero
	for _, o := range orders {
		v := NewOrderView(o)
		if !IsClosed(v.EffectiveStatus) {
			dash.Active = append(dash.Active, v)
			continue
		}
		dash.Done = append(dash.Done, v)
		if v.EffectiveStatus == models.OrderDelivered {
			dash.Stats.Delivered++
			if o.CreatedAt.UTC().Format("2006-01-02") == today {
				earnings = earnings.Add(decimal.NewFromFloat(o.TotalAmount))
			}
		}
	}
	dash.Stats.Active = len(dash.Active)
	dash.Stats.TodayEarnings = earnings.Round(2).InexactFloat64()
	return dash, nil
}

// MarkDelivered closes an order assigned to the caller and frees the partner.
func (s *DeliveryService) MarkDelivered(ctx context.Context, sess session.Session, orderID string) (OrderView, error) {
	partner, err := s.ResolvePartner(ctx, sess)
	if err != nil {
		return OrderView{}, err
	}
	order, err := s.repos.Orders.FindByID(ctx, orderID)
	if err != nil {
		return OrderView{}, err
	}
	if !AssignedTo(order, partner.ID) {
		return OrderView{}, ErrNotFound
	}
	if IsClosed(OrderStatus(order)) {
		return OrderView{}, ErrOrderClosed
	}

	err = s.repos.Tx(func(tx *repository.Repositories) error {
		if err := tx.Orders.Updates(ctx, order.ID, StatusFields(models.OrderDelivered)); err != nil {
			return fmt.Errorf("mark order delivered: %w", err)
		}
		if err := tx.Partners.Updates(ctx, partner.ID, map[string]interface{}{"status": models.PartnerActive}); err != nil {
			return fmt.Errorf("reset partner status: %w", err)
		}
		return nil
	})
	if err != nil {
		return OrderView{}, err
	}
	SetStatus(order, models.OrderDelivered)
	utils.InfoLogger.Printf("Order %s delivered by partner %s", order.ID, partner.ID)

	view := NewOrderView(*order)
	s.events.Publish(hub.Event{Name: hub.EventOrderDelivered, BranchID: order.BranchID, PartnerID: partner.ID, Payload: view})
	return view, nil
}
