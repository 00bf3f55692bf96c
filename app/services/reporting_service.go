package services

import (
	"time"

	"github.com/atelierhq/atelier/app/models"
	"github.com/atelierhq/atelier/app/repositories"
	"github.com/atelierhq/atelier/pkg/cache"
	"github.com/atelierhq/atelier/pkg/collection"
)

// Dashboard responses are cached briefly so a busy back office does not
// re-run the aggregate queries on every page load.
const dashboardTTL = 30 * time.Second

// OrderTotals are the headline numbers at the top of the dashboard.
type OrderTotals struct {
	Orders            int64   `json:"orders"`
	Revenue           float64 `json:"revenue"`
	AverageOrderValue float64 `json:"average_order_value"`
}

// StatusSlice is one wedge of the orders-by-status chart.
type StatusSlice struct {
	Status     models.OrderStatus `json:"status"`
	Label      string             `json:"label"`
	Color      string             `json:"color"`
	Count      int64              `json:"count"`
	Percentage float64            `json:"percentage"`
}

// TopProduct is one row of the best-sellers table.
type TopProduct struct {
	Product   models.Product `json:"product"`
	UnitsSold int64          `json:"units_sold"`
}

// DashboardSummary is everything the dashboard page renders.
type DashboardSummary struct {
	Totals       OrderTotals                  `json:"totals"`
	Products     int64                        `json:"products"`
	Customers    int64                        `json:"customers"`
	Revenue      []repositories.PeriodRevenue `json:"revenue"`
	RecentOrders []models.Order               `json:"recent_orders"`
}

// ReportingService computes the dashboard and analytics aggregates.
type ReportingService struct {
	orders   *repositories.OrderRepository
	products *repositories.ProductRepository
	users    *repositories.UserRepository
}

func NewReportingService() *ReportingService {
	return &ReportingService{
		orders:   repositories.NewOrderRepository(),
		products: repositories.NewProductRepository(),
		users:    repositories.NewUserRepository(),
	}
}

// OrderTotals returns order count, revenue and average order value.
// The average is zero when there are no orders.
func (s *ReportingService) OrderTotals() (OrderTotals, error) {
	count, err := s.orders.Count()
	if err != nil {
		return OrderTotals{}, err
	}
	revenue, err := s.orders.SumRevenue()
	if err != nil {
		return OrderTotals{}, err
	}

	t := OrderTotals{Orders: count, Revenue: revenue}
	if count > 0 {
		t.AverageOrderValue = revenue / float64(count)
	}
	return t, nil
}

// Dashboard assembles the dashboard page for a reporting period
// ("week", "month" or "year").
func (s *ReportingService) Dashboard(period string) (DashboardSummary, error) {
	key := "atelier:dashboard:" + period
	var cached DashboardSummary
	if cache.Get(key, &cached) {
		return cached, nil
	}

	totals, err := s.OrderTotals()
	if err != nil {
		return DashboardSummary{}, err
	}

	productCount, err := s.products.Count()
	if err != nil {
		return DashboardSummary{}, err
	}
	customerCount, err := s.users.Count()
	if err != nil {
		return DashboardSummary{}, err
	}

	revenue, err := s.orders.RevenueByPeriod(period)
	if err != nil {
		return DashboardSummary{}, err
	}

	recent, err := s.orders.Recent(5)
	if err != nil {
		return DashboardSummary{}, err
	}

	summary := DashboardSummary{
		Totals:       totals,
		Products:     productCount,
		Customers:    customerCount,
		Revenue:      revenue,
		RecentOrders: recent,
	}
	_ = cache.Set(key, summary, dashboardTTL)
	return summary, nil
}

// StatusBreakdown groups orders by status with each wedge's share of the
// whole. Statuses with no orders are omitted. Percentages are 0 when there
// are no orders at all.
func (s *ReportingService) StatusBreakdown() ([]StatusSlice, error) {
	rows, err := s.orders.StatusCounts()
	if err != nil {
		return nil, err
	}

	total := collection.Reduce(rows, int64(0), func(acc int64, r repositories.StatusCount) int64 {
		return acc + r.Count
	})

	byStatus := collection.KeyBy(rows, func(r repositories.StatusCount) models.OrderStatus {
		return r.Status
	})

	var slices []StatusSlice
	for _, status := range models.AllOrderStatuses {
		row, ok := byStatus[status]
		if !ok {
			continue
		}
		slice := StatusSlice{
			Status: status,
			Label:  status.Label(),
			Color:  status.Color(),
			Count:  row.Count,
		}
		if total > 0 {
			slice.Percentage = float64(row.Count) / float64(total) * 100
		}
		slices = append(slices, slice)
	}
	return slices, nil
}

// TopProducts ranks products by units sold across all orders and returns
// the best n with their catalogue records. Products that tie on units keep
// the order their first sale appeared in.
func (s *ReportingService) TopProducts(n int) ([]TopProduct, error) {
	items, err := s.orders.AllItems()
	if err != nil {
		return nil, err
	}

	// Tally units per product, remembering first-appearance order.
	units := make(map[uint]int64)
	var appearance []uint
	for _, item := range items {
		if _, seen := units[item.ProductID]; !seen {
			appearance = append(appearance, item.ProductID)
		}
		units[item.ProductID] += int64(item.Quantity)
	}

	type rankRow struct {
		productID uint
		units     int64
	}
	rows := collection.Map(appearance, func(id uint) rankRow {
		return rankRow{productID: id, units: units[id]}
	})
	rows = collection.SortBy(rows, func(a, b rankRow) bool { return a.units > b.units })
	rows = collection.Take(rows, n)

	ids := collection.Map(rows, func(r rankRow) uint { return r.productID })
	products, err := s.products.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := collection.KeyBy(products, func(p models.Product) uint { return p.ID })

	var top []TopProduct
	for _, row := range rows {
		product, ok := byID[row.productID]
		if !ok {
			// Product row deleted since the sale; skip it.
			continue
		}
		top = append(top, TopProduct{Product: product, UnitsSold: row.units})
	}
	return top, nil
}
