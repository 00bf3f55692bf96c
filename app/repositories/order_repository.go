package repositories

import (
	"fmt"
	"time"

	"github.com/atelierhq/atelier/app/models"
	"github.com/atelierhq/atelier/pkg/orm"
)

// StatusCount is one row of the orders-by-status aggregate.
type StatusCount struct {
	Status models.OrderStatus `json:"status"`
	Count  int64              `json:"count"`
}

// PeriodRevenue is one bucket of revenue grouped by calendar period.
type PeriodRevenue struct {
	Period  string  `json:"period"`
	Revenue float64 `json:"revenue"`
	Orders  int64   `json:"orders"`
}

// OrderRepository handles database operations for Order and OrderItem.
type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// FindByID loads one order with its customer and line items.
func (r *OrderRepository) FindByID(id uint) (models.Order, error) {
	var order models.Order
	err := orm.DB().Model(&models.Order{}).
		Preload("User").
		Preload("Items").
		Preload("Items.Product").
		Where("id = ?", id).
		First(&order)
	return order, err
}

// All returns every order with its customer, newest first.
func (r *OrderRepository) All() ([]models.Order, error) {
	var orders []models.Order
	err := orm.DB().Model(&models.Order{}).
		Preload("User").
		Order("created_at desc").
		Get(&orders)
	return orders, err
}

// AllWithItems returns every order with line items preloaded, newest first.
func (r *OrderRepository) AllWithItems() ([]models.Order, error) {
	var orders []models.Order
	err := orm.DB().Model(&models.Order{}).
		Preload("Items").
		Order("created_at desc").
		Get(&orders)
	return orders, err
}

// Page returns one page of orders with customers and items, newest first.
func (r *OrderRepository) Page(page, perPage int) ([]models.Order, orm.Pagination, error) {
	var orders []models.Order
	p, err := orm.DB().Model(&models.Order{}).
		Preload("User").
		Preload("Items").
		Order("created_at desc").
		GetWithPagination(&orders, page, perPage)
	return orders, p, err
}

// Recent returns the n newest orders with their customers.
func (r *OrderRepository) Recent(n int) ([]models.Order, error) {
	var orders []models.Order
	err := orm.DB().Model(&models.Order{}).
		Preload("User").
		Order("created_at desc").
		Limit(n).
		Get(&orders)
	return orders, err
}

// Create persists a new order with its items.
func (r *OrderRepository) Create(order *models.Order) error {
	return orm.DB().Create(order)
}

// Update persists changes to an existing order.
func (r *OrderRepository) Update(order *models.Order) error {
	return orm.DB().Save(order)
}

// Count returns the total number of orders.
func (r *OrderRepository) Count() (int64, error) {
	return orm.DB().Model(&models.Order{}).Count()
}

// SumRevenue returns the sum of all order totals, zero when there are none.
func (r *OrderRepository) SumRevenue() (float64, error) {
	var out struct{ Total float64 }
	err := orm.DB().Model(&models.Order{}).
		Select("COALESCE(SUM(total), 0) AS total").
		Scan(&out)
	return out.Total, err
}

// StatusCounts groups orders by status.
func (r *OrderRepository) StatusCounts() ([]StatusCount, error) {
	var rows []StatusCount
	err := orm.DB().Model(&models.Order{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows)
	return rows, err
}

// AllItems returns every order line in insertion order. Best-seller
// ranking runs over this in memory so that ties keep their input order.
func (r *OrderRepository) AllItems() ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := orm.DB().Model(&models.OrderItem{}).Order("id asc").Get(&items)
	return items, err
}

// RevenueByPeriod buckets revenue by calendar week, month or year.
// period is "week" (last 12 weeks), "month" (last 12 months) or
// "year" (last 5 years). Buckets come back newest first.
func (r *OrderRepository) RevenueByPeriod(period string) ([]PeriodRevenue, error) {
	expr, since, err := periodBucket(period)
	if err != nil {
		return nil, err
	}

	var rows []PeriodRevenue
	err = orm.DB().Model(&models.Order{}).
		Select(expr+" AS period, COALESCE(SUM(total), 0) AS revenue, COUNT(*) AS orders").
		Where("created_at >= ?", since).
		Group("period").
		Order("period desc").
		Scan(&rows)
	return rows, err
}

// periodBucket returns the dialect-specific grouping expression and the
// cutoff timestamp for a reporting period.
func periodBucket(period string) (string, time.Time, error) {
	now := time.Now()

	type layouts struct{ week, month, year string }
	var l layouts
	switch orm.Dialect() {
	case "postgres":
		l = layouts{
			week:  "to_char(date_trunc('week', created_at), 'YYYY-MM-DD')",
			month: "to_char(date_trunc('month', created_at), 'YYYY-MM')",
			year:  "to_char(date_trunc('year', created_at), 'YYYY')",
		}
	case "mysql":
		l = layouts{
			week:  "DATE_FORMAT(created_at, '%x-W%v')",
			month: "DATE_FORMAT(created_at, '%Y-%m')",
			year:  "DATE_FORMAT(created_at, '%Y')",
		}
	default: // sqlite, sqlserver falls back to sqlite-style only for sqlite
		l = layouts{
			week:  "strftime('%Y-W%W', created_at)",
			month: "strftime('%Y-%m', created_at)",
			year:  "strftime('%Y', created_at)",
		}
	}

	switch period {
	case "week":
		return l.week, now.AddDate(0, 0, -12*7), nil
	case "month":
		return l.month, now.AddDate(0, -12, 0), nil
	case "year":
		return l.year, now.AddDate(-5, 0, 0), nil
	}
	return "", time.Time{}, fmt.Errorf("invalid reporting period %q", period)
}
