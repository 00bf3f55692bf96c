package services_test

import (
	"testing"

	"github.com/atelierhq/atelier/app/models"
	"github.com/atelierhq/atelier/app/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateStatusPersists(t *testing.T) {
	db := setupDB(t)
	u := createUser(t, db, "Ada", "ada@example.com")
	order := createOrder(t, db, u.ID, models.StatusPending, 50)

	svc := services.NewOrderService()

	updated, err := svc.UpdateStatus(order.ID, "SHIPPED")
	require.NoError(t, err)
	assert.Equal(t, models.StatusShipped, updated.Status)

	reloaded, err := svc.Find(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusShipped, reloaded.Status)
}

func TestUpdateStatusAllowsAnyMemberTransition(t *testing.T) {
	db := setupDB(t)
	u := createUser(t, db, "Ada", "ada@example.com")
	order := createOrder(t, db, u.ID, models.StatusCompleted, 50)

	// Moving backwards through the lifecycle is permitted.
	updated, err := services.NewOrderService().UpdateStatus(order.ID, "PENDING")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, updated.Status)
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	db := setupDB(t)
	u := createUser(t, db, "Ada", "ada@example.com")
	order := createOrder(t, db, u.ID, models.StatusPending, 50)

	svc := services.NewOrderService()

	_, err := svc.UpdateStatus(order.ID, "REFUNDED")
	require.Error(t, err)

	// The stored status is untouched.
	reloaded, err := svc.Find(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, reloaded.Status)
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	setupDB(t)

	_, err := services.NewOrderService().UpdateStatus(9999, "SHIPPED")
	assert.ErrorIs(t, err, services.ErrOrderNotFound)
}

func TestFindPreloadsItemsAndCustomer(t *testing.T) {
	db := setupDB(t)
	u := createUser(t, db, "Ada", "ada@example.com")
	p := createProduct(t, db, "Tote", 38)
	order := createOrder(t, db, u.ID, models.StatusPending, 76,
		models.OrderItem{ProductID: p.ID, Quantity: 2, UnitPrice: p.Price},
	)

	found, err := services.NewOrderService().Find(order.ID)
	require.NoError(t, err)

	assert.Equal(t, "Ada", found.User.Name)
	require.Len(t, found.Items, 1)
	assert.Equal(t, "Tote", found.Items[0].Product.Name)
	assert.InDelta(t, 76, found.Items[0].Subtotal(), 1e-9)
}
