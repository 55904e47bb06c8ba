package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"

	"github.com/yeremiapane/sangem-ordering/hub"
	"github.com/yeremiapane/sangem-ordering/models"
	"github.com/yeremiapane/sangem-ordering/repository"
	"github.com/yeremiapane/sangem-ordering/session"
	"github.com/yeremiapane/sangem-ordering/utils"
)

// Publisher receives order events after a successful write.
type Publisher interface {
	Publish(e hub.Event)
}

// OrderNotifier is told about every new order. Errors are logged, never
// returned to the customer.
type OrderNotifier interface {
	NotifyNewOrder(ctx context.Context, order models.Order) error
}

type nopPublisher struct{}

func (nopPublisher) Publish(hub.Event) {}

type OrderLimits struct {
	Admin  int
	Branch int
}

type OrderQuery struct {
	Search   string
	Status   string
	BranchID string
}

type OrderService struct {
	repos    *repository.Repositories
	events   Publisher
	notifier OrderNotifier
	limits   OrderLimits
}

func NewOrderService(repos *repository.Repositories, events Publisher, notifier OrderNotifier, limits OrderLimits) *OrderService {
	if events == nil {
		events = nopPublisher{}
	}
	if limits.Admin <= 0 {
		limits.Admin = 500
	}
	if limits.Branch <= 0 {
		limits.Branch = 200
	}
	return &OrderService{repos: repos, events: events, notifier: notifier, limits: limits}
}

// PlaceOrder validates a checkout and writes one cash-on-delivery order.
func (s *OrderService) PlaceOrder(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	lines := req.CartLines()
	totals := ComputeTotals(lines)
	items, err := json.Marshal(snapshotItems(lines))
	if err != nil {
		return nil, fmt.Errorf("encode items: %w", err)
	}

	order := models.Order{
		CustomerName:    strings.TrimSpace(req.CustomerName),
		CustomerPhone:   req.CustomerPhone,
		DeliveryAddress: strings.TrimSpace(req.DeliveryAddress),
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		BranchID:        req.BranchID,
		Items:           datatypes.JSON(items),
		TotalAmount:     totals.Total.InexactFloat64(),
		PaymentMethod:   models.PaymentCashOnDelivery,
	}
	if email := strings.TrimSpace(req.CustomerEmail); email != "" {
		order.CustomerEmail = &email
	}
	SetStatus(&order, models.OrderPending)

	if err := s.repos.Orders.Create(ctx, &order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	utils.InfoLogger.WithFields(logrus.Fields{
		"order_id": order.ID,
		"branch":   order.BranchID,
		"total":    utils.FormatINR(totals.Total),
	}).Info("order placed")

	view := NewOrderView(order)
	s.events.Publish(hub.Event{Name: hub.EventOrderCreated, BranchID: order.BranchID, Payload: view})
	if s.notifier != nil {
		go func(o models.Order) {
			if err := s.notifier.NotifyNewOrder(context.Background(), o); err != nil {
				utils.ErrorLogger.Warnf("new order notification for %s failed: %v", o.ID, err)
			}
		}(order)
	}

	return &CheckoutResult{
		Order:    view,
		Totals:   totals.View(),
		Progress: CheckoutProgress,
	}, nil
}

// ListOrders returns the newest orders inside the caller's scope, filtered
// by search text (name or phone), reconciled status and branch.
func (s *OrderService) ListOrders(ctx context.Context, sess session.Session, q OrderQuery) ([]OrderView, error) {
	filter := repository.OrderFilter{}
	switch {
	case sess.IsAdmin():
		filter.Limit = s.limits.Admin
		filter.BranchID = q.BranchID
	case sess.IsBranch():
		filter.Limit = s.limits.Branch
		filter.BranchID = sess.BranchID
	default:
		return nil, ErrForbidden
	}
	if q.Status != "" && q.Status != "all" && !IsKnownStatus(q.Status) {
		return nil, ErrInvalidStatus
	}

	orders, err := s.repos.Orders.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		v := NewOrderView(o)
		if !matchesOrderQuery(v, q) {
			continue
		}
		views = append(views, v)
	}
	return views, nil
}

func matchesOrderQuery(v OrderView, q OrderQuery) bool {
	if q.Status != "" && q.Status != "all" && v.EffectiveStatus != q.Status {
		return false
	}
	search := strings.ToLower(strings.TrimSpace(q.Search))
	if search == "" {
		return true
	}
	if strings.Contains(strings.ToLower(v.CustomerName), search) {
		return true
	}
	digits := utils.SanitizePhone(search)
	return digits != "" && strings.Contains(v.CustomerPhone, digits)
}

func (s *OrderService) GetOrder(ctx context.Context, sess session.Session, id string) (OrderView, error) {
	order, err := s.scopedOrder(ctx, sess, id)
	if err != nil {
		return OrderView{}, err
	}
	return NewOrderView(*order), nil
}

// UpdateStatus writes status to all four aliases in one update.
func (s *OrderService) UpdateStatus(ctx context.Context, sess session.Session, id, status string) (OrderView, error) {
	if !IsKnownStatus(status) {
		return OrderView{}, ErrInvalidStatus
	}
	order, err := s.scopedOrder(ctx, sess, id)
	if err != nil {
		return OrderView{}, err
	}

	if err := s.repos.Orders.Updates(ctx, order.ID, StatusFields(status)); err != nil {
		return OrderView{}, fmt.Errorf("update order status: %w", err)
	}
	SetStatus(order, status)
	utils.InfoLogger.Printf("Order %s status -> %s by %s", order.ID, status, sess.Email)

	view := NewOrderView(*order)
	s.events.Publish(hub.Event{Name: hub.EventOrderStatus, BranchID: order.BranchID, PartnerID: view.AssignedRiderID, Payload: view})
	return view, nil
}

// AssignRider points every rider alias at the partner, confirms the order
// and marks the partner on_delivery. Both rows change in one transaction.
// Only active partners can take an order.
func (s *OrderService) AssignRider(ctx context.Context, sess session.Session, orderID, partnerID string) (OrderView, error) {
	order, err := s.scopedOrder(ctx, sess, orderID)
	if err != nil {
		return OrderView{}, err
	}
	partner, err := s.repos.Partners.FindByID(ctx, partnerID)
	if err != nil {
		return OrderView{}, err
	}
	if !sess.IsAdmin() && partner.BranchID != sess.BranchID {
		return OrderView{}, ErrForbidden
	}
	if partner.Status != models.PartnerActive {
		return OrderView{}, fmt.Errorf("partner %s is %s: %w", partner.ID, partner.Status, ErrPartnerUnavailable)
	}

	err = s.repos.Tx(func(tx *repository.Repositories) error {
		if err := tx.Orders.Updates(ctx, order.ID, AssignmentFields(partner.ID)); err != nil {
			return fmt.Errorf("assign rider on order: %w", err)
		}
		if err := tx.Partners.Updates(ctx, partner.ID, map[string]interface{}{"status": models.PartnerOnDelivery}); err != nil {
			return fmt.Errorf("mark partner on delivery: %w", err)
		}
		return nil
	})
	if err != nil {
		return OrderView{}, err
	}

	updated, err := s.repos.Orders.FindByID(ctx, order.ID)
	if err != nil {
		return OrderView{}, err
	}
	utils.InfoLogger.Printf("Order %s assigned to partner %s (%s) by %s", order.ID, partner.ID, partner.Name, sess.Email)

	view := NewOrderView(*updated)
	s.events.Publish(hub.Event{Name: hub.EventRiderAssigned, BranchID: updated.BranchID, PartnerID: partner.ID, Payload: view})
	return view, nil
}

// scopedOrder hides orders of other branches behind ErrNotFound.
func (s *OrderService) scopedOrder(ctx context.Context, sess session.Session, id string) (*models.Order, error) {
	if !sess.IsAdmin() && !sess.IsBranch() {
		return nil, ErrForbidden
	}
	order, err := s.repos.Orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !sess.CanSeeBranch(order.BranchID) {
		return nil, ErrNotFound
	}
	return order, nil
}
