package services_test

import (
	"testing"

	"github.com/atelierhq/atelier/app/models"
	"github.com/atelierhq/atelier/app/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderTotalsEmpty(t *testing.T) {
	setupDB(t)
	svc := services.NewReportingService()

	totals, err := svc.OrderTotals()
	require.NoError(t, err)

	assert.Equal(t, int64(0), totals.Orders)
	assert.Zero(t, totals.Revenue)
	assert.Zero(t, totals.AverageOrderValue, "average must be zero when there are no orders")
}

func TestOrderTotals(t *testing.T) {
	db := setupDB(t)
	u := createUser(t, db, "Ada", "ada@example.com")
	createOrder(t, db, u.ID, models.StatusCompleted, 10)
	createOrder(t, db, u.ID, models.StatusPending, 30)

	totals, err := services.NewReportingService().OrderTotals()
	require.NoError(t, err)

	assert.Equal(t, int64(2), totals.Orders)
	assert.InDelta(t, 40, totals.Revenue, 1e-9)
	assert.InDelta(t, 20, totals.AverageOrderValue, 1e-9)
}

func TestStatusBreakdown(t *testing.T) {
	db := setupDB(t)
	u := createUser(t, db, "Ada", "ada@example.com")
	createOrder(t, db, u.ID, models.StatusPending, 10)
	createOrder(t, db, u.ID, models.StatusPending, 10)
	createOrder(t, db, u.ID, models.StatusShipped, 10)
	createOrder(t, db, u.ID, models.StatusCompleted, 10)

	slices, err := services.NewReportingService().StatusBreakdown()
	require.NoError(t, err)
	require.Len(t, slices, 3)

	// Slices follow the canonical status order.
	assert.Equal(t, models.StatusPending, slices[0].Status)
	assert.Equal(t, models.StatusShipped, slices[1].Status)
	assert.Equal(t, models.StatusCompleted, slices[2].Status)

	assert.Equal(t, int64(2), slices[0].Count)
	assert.InDelta(t, 50, slices[0].Percentage, 1e-9)

	var sum float64
	for _, s := range slices {
		sum += s.Percentage
	}
	assert.InDelta(t, 100, sum, 1e-9)
}

func TestTopProductsRankingAndTies(t *testing.T) {
	db := setupDB(t)
	u := createUser(t, db, "Ada", "ada@example.com")
	a := createProduct(t, db, "Tote", 38)
	b := createProduct(t, db, "Mug", 22)
	c := createProduct(t, db, "Tray", 64)

	// a and b tie on 2 units; c leads with 5.
	createOrder(t, db, u.ID, models.StatusCompleted, 0,
		models.OrderItem{ProductID: a.ID, Quantity: 2, UnitPrice: a.Price},
		models.OrderItem{ProductID: b.ID, Quantity: 1, UnitPrice: b.Price},
	)
	createOrder(t, db, u.ID, models.StatusCompleted, 0,
		models.OrderItem{ProductID: c.ID, Quantity: 5, UnitPrice: c.Price},
		models.OrderItem{ProductID: b.ID, Quantity: 1, UnitPrice: b.Price},
	)

	svc := services.NewReportingService()

	top, err := svc.TopProducts(5)
	require.NoError(t, err)
	require.Len(t, top, 3)

	assert.Equal(t, c.ID, top[0].Product.ID)
	assert.Equal(t, int64(5), top[0].UnitsSold)
	// Tied products keep first-appearance order: a sold before b's second unit.
	assert.Equal(t, a.ID, top[1].Product.ID)
	assert.Equal(t, b.ID, top[2].Product.ID)

	// N caps the result length.
	top2, err := svc.TopProducts(2)
	require.NoError(t, err)
	require.Len(t, top2, 2)
	assert.Equal(t, c.ID, top2[0].Product.ID)
}

func TestDashboard(t *testing.T) {
	db := setupDB(t)
	u := createUser(t, db, "Ada", "ada@example.com")
	createProduct(t, db, "Tote", 38)
	createOrder(t, db, u.ID, models.StatusCompleted, 76)

	summary, err := services.NewReportingService().Dashboard("month")
	require.NoError(t, err)

	assert.Equal(t, int64(1), summary.Totals.Orders)
	assert.Equal(t, int64(1), summary.Products)
	assert.Equal(t, int64(1), summary.Customers)
	require.Len(t, summary.RecentOrders, 1)
	assert.Equal(t, "Ada", summary.RecentOrders[0].User.Name)
	require.Len(t, summary.Revenue, 1)
	assert.InDelta(t, 76, summary.Revenue[0].Revenue, 1e-9)
}

func TestDashboardRejectsUnknownPeriod(t *testing.T) {
	setupDB(t)
	_, err := services.NewReportingService().Dashboard("decade")
	require.Error(t, err)
}
