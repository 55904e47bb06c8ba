package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/yeremiapane/sangem-ordering/models"
	"github.com/yeremiapane/sangem-ordering/repository"
	"github.com/yeremiapane/sangem-ordering/session"
)

type BranchRevenue struct {
	BranchID string  `json:"branch_id"`
	Orders   int     `json:"orders"`
	Revenue  float64 `json:"revenue"`
}

type DayCount struct {
	Date   string `json:"date"`
	Orders int    `json:"orders"`
}

// Overview summarises the same rows the dashboard loads, so it shares the
// order row limit.
type Overview struct {
	TotalOrders        int             `json:"total_orders"`
	PendingOrders      int             `json:"pending_orders"`
	DeliveredOrders    int             `json:"delivered_orders"`
	Revenue            float64         `json:"revenue"`
	Dishes             int             `json:"dishes"`
	Partners           int             `json:"partners"`
	ActivePartners     int             `json:"active_partners"`
	OnDeliveryPartners int             `json:"on_delivery_partners"`
	Reviews            int             `json:"reviews"`
	AverageRating      *float64        `json:"average_rating"`
	RevenueByBranch    []BranchRevenue `json:"revenue_by_branch,omitempty"`
	LastSevenDays      []DayCount      `json:"last_seven_days"`
	GeneratedAt        time.Time       `json:"generated_at"`
}

type OverviewService struct {
	repos  *repository.Repositories
	limits OrderLimits
	now    func() time.Time
}

func NewOverviewService(repos *repository.Repositories, limits OrderLimits) *OverviewService {
	if limits.Admin <= 0 {
		limits.Admin = 500
	}
	if limits.Branch <= 0 {
		limits.Branch = 200
	}
	return &OverviewService{repos: repos, limits: limits, now: time.Now}
}

func (s *OverviewService) Overview(ctx context.Context, sess session.Session) (*Overview, error) {
	var branchID string
	limit := s.limits.Admin
	switch {
	case sess.IsAdmin():
	case sess.IsBranch():
		branchID = sess.BranchID
		limit = s.limits.Branch
	default:
		return nil, ErrForbidden
	}

	orders, err := s.repos.Orders.List(ctx, repository.OrderFilter{BranchID: branchID, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("overview orders: %w", err)
	}
	dishes, err := s.repos.Dishes.List(ctx, branchID)
	if err != nil {
		return nil, fmt.Errorf("overview dishes: %w", err)
	}
	partners, err := s.repos.Partners.List(ctx, branchID)
	if err != nil {
		return nil, fmt.Errorf("overview partners: %w", err)
	}
	feedback, err := s.repos.Feedback.List(ctx, branchID)
	if err != nil {
		return nil, fmt.Errorf("overview feedback: %w", err)
	}

	ov := Summarize(orders, dishes, partners, feedback, s.now())
	if !sess.IsAdmin() {
		ov.RevenueByBranch = nil
	}
	return ov, nil
}

// Summarize builds the overview from already loaded rows.
func Summarize(orders []models.Order, dishes []models.Dish, partners []models.DeliveryPartner, feedback []models.Feedback, now time.Time) *Overview {
	ov := &Overview{
		TotalOrders: len(orders),
		Dishes:      len(dishes),
		Partners:    len(partners),
		Reviews:     len(feedback),
		GeneratedAt: now,
	}

	revenue := decimal.Zero
	byBranch := map[string]*BranchRevenue{}
	byBranchRevenue := map[string]decimal.Decimal{}
	for _, o := range orders {
		amount := decimal.NewFromFloat(o.TotalAmount)
		revenue = revenue.Add(amount)
		switch OrderStatus(&o) {
		case models.OrderPending:
			ov.PendingOrders++
		case models.OrderDelivered:
			ov.DeliveredOrders++
		}

		br, ok := byBranch[o.BranchID]
		if !ok {
			br = &BranchRevenue{BranchID: o.BranchID}
			byBranch[o.BranchID] = br
		}
		br.Orders++
		byBranchRevenue[o.BranchID] = byBranchRevenue[o.BranchID].Add(amount)
	}
	ov.Revenue = revenue.Round(2).InexactFloat64()

	ov.RevenueByBranch = make([]BranchRevenue, 0, len(byBranch))
	for id, br := range byBranch {
		br.Revenue = byBranchRevenue[id].Round(2).InexactFloat64()
		ov.RevenueByBranch = append(ov.RevenueByBranch, *br)
	}
	sort.Slice(ov.RevenueByBranch, func(i, j int) bool {
		return ov.RevenueByBranch[i].BranchID < ov.RevenueByBranch[j].BranchID
	})

	for _, p := range partners {
		switch p.Status {
		case models.PartnerActive:
			ov.ActivePartners++
		case models.PartnerOnDelivery:
			ov.OnDeliveryPartners++
		}
	}

	if len(feedback) > 0 {
		sum := 0
		for _, f := range feedback {
			sum += f.Rating
		}
		avg := decimal.NewFromInt(int64(sum)).Div(decimal.NewFromInt(int64(len(feedback)))).Round(1).InexactFloat64()
		ov.AverageRating = &avg
	}

	ov.LastSevenDays = lastSevenDays(orders, now)
	return ov
}

// lastSevenDays counts orders per UTC calendar day, oldest day first.
func lastSevenDays(orders []models.Order, now time.Time) []DayCount {
	days := make([]DayCount, 7)
	index := map[string]int{}
	for i := 0; i < 7; i++ {
		date := now.UTC().AddDate(0, 0, i-6).Format("2006-01-02")
		days[i] = DayCount{Date: date}
		index[date] = i
	}
	for _, o := range orders {
		if i, ok := index[o.CreatedAt.UTC().Format("2006-01-02")]; ok {
			days[i].Orders++
		}
	}
	return days
}
