package services_test

import (
	"testing"

	"github.com/atelierhq/atelier/app/models"
	"github.com/atelierhq/atelier/pkg/database"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupDB points the global connection at a fresh in-memory SQLite
// database with the full schema migrated.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Shared-cache memory DBs persist per process; wipe between tests.
	require.NoError(t, db.Migrator().DropTable(
		&models.OrderItem{}, &models.Order{}, &models.Product{}, &models.User{},
	))
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Product{}, &models.Order{}, &models.OrderItem{},
	))

	database.DB = db
	return db
}

func createUser(t *testing.T, db *gorm.DB, name, email string) models.User {
	t.Helper()
	u := models.User{Name: name, Email: email, Password: "x", Role: "customer"}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func createProduct(t *testing.T, db *gorm.DB, name string, price float64) models.Product {
	t.Helper()
	p := models.Product{Name: name, Price: price, Stock: 10}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func createOrder(t *testing.T, db *gorm.DB, userID uint, status models.OrderStatus, total float64, items ...models.OrderItem) models.Order {
	t.Helper()
	o := models.Order{UserID: userID, Status: status, Total: total, Items: items}
	require.NoError(t, db.Create(&o).Error)
	return o
}
