package services_test

import (
	"testing"
	"time"

	"github.com/atelierhq/atelier/app/models"
	"github.com/atelierhq/atelier/app/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerOverview(t *testing.T) {
	db := setupDB(t)
	ada := createUser(t, db, "Ada", "ada@example.com")
	ben := createUser(t, db, "Ben", "ben@example.com")

	first := createOrder(t, db, ada.ID, models.StatusCompleted, 40)
	second := createOrder(t, db, ada.ID, models.StatusShipped, 60)
	_ = first

	overview, err := services.NewCustomerService().Overview()
	require.NoError(t, err)

	assert.Equal(t, int64(2), overview.TotalCustomers)
	assert.Equal(t, int64(1), overview.ActiveCustomers)
	require.Len(t, overview.Stats, 2)

	var adaStats, benStats services.CustomerStats
	for _, cs := range overview.Stats {
		switch cs.User.ID {
		case ada.ID:
			adaStats = cs
		case ben.ID:
			benStats = cs
		}
	}

	assert.Equal(t, int64(2), adaStats.TotalOrders)
	assert.InDelta(t, 100, adaStats.TotalSpent, 1e-9)
	require.NotNil(t, adaStats.LastOrder)
	assert.WithinDuration(t, second.CreatedAt, *adaStats.LastOrder, time.Second)

	// A customer with no orders gets zeroes, not a missing row.
	assert.Equal(t, int64(0), benStats.TotalOrders)
	assert.Zero(t, benStats.TotalSpent)
	assert.Nil(t, benStats.LastOrder)

	require.NotEmpty(t, overview.TopSpenders)
	assert.Equal(t, ada.ID, overview.TopSpenders[0].User.ID)

	require.Len(t, overview.RecentSignups, 2)
}

func TestCustomerOverviewEmpty(t *testing.T) {
	setupDB(t)

	overview, err := services.NewCustomerService().Overview()
	require.NoError(t, err)

	assert.Equal(t, int64(0), overview.TotalCustomers)
	assert.Equal(t, int64(0), overview.ActiveCustomers)
	assert.Empty(t, overview.Stats)
	assert.Empty(t, overview.TopSpenders)
	assert.Empty(t, overview.RecentSignups)
}
