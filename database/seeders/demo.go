package seeders

import (
	"time"

	"github.com/atelierhq/atelier/app/models"
	"github.com/atelierhq/atelier/pkg/auth"
	"gorm.io/gorm"
)

func init() {
	Register("users", SeedUsers)
	Register("products", SeedProducts)
	Register("orders", SeedOrders)
}

// SeedUsers creates one admin account and a few demo customers.
// Idempotent: skips when any user already exists.
func SeedUsers(db *gorm.DB) error {
	var n int64
	if err := db.Model(&models.User{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	hash, err := auth.HashPassword("password")
	if err != nil {
		return err
	}

	users := []models.User{
		{Name: "Admin", Email: "admin@atelier.test", Password: hash, Role: "admin"},
		{Name: "Ada Fields", Email: "ada@example.com", Password: hash, Role: "customer"},
		{Name: "Ben Okafor", Email: "ben@example.com", Password: hash, Role: "customer"},
		{Name: "Carla Reyes", Email: "carla@example.com", Password: hash, Role: "customer"},
	}
	return db.Create(&users).Error
}

// SeedProducts fills the catalogue with a small demo range.
func SeedProducts(db *gorm.DB) error {
	var n int64
	if err := db.Model(&models.Product{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	products := []models.Product{
		{Name: "Linen Tote", Description: "Natural linen tote bag.", Price: 38, Stock: 24, SKU: "AT-TOTE-01"},
		{Name: "Ceramic Mug", Description: "Hand-thrown stoneware mug.", Price: 22, Stock: 60, SKU: "AT-MUG-01"},
		{Name: "Walnut Tray", Description: "Solid walnut serving tray.", Price: 64, Stock: 12, SKU: "AT-TRAY-01"},
		{Name: "Wool Throw", Description: "Lambswool throw blanket.", Price: 120, Stock: 8, SKU: "AT-THRW-01"},
		{Name: "Brass Opener", Description: "Cast brass bottle opener.", Price: 18, Stock: 0, SKU: "AT-OPNR-01"},
	}
	return db.Create(&products).Error
}

// SeedOrders creates a handful of orders across customers and statuses so
// the dashboard has something to chart.
func SeedOrders(db *gorm.DB) error {
	var n int64
	if err := db.Model(&models.Order{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	var customers []models.User
	if err := db.Where("role = ?", "customer").Find(&customers).Error; err != nil {
		return err
	}
	var products []models.Product
	if err := db.Find(&products).Error; err != nil {
		return err
	}
	if len(customers) < 3 || len(products) < 4 {
		return nil
	}

	statuses := []models.OrderStatus{
		models.StatusCompleted, models.StatusShipped, models.StatusProcessing,
		models.StatusPending, models.StatusCancelled, models.StatusCompleted,
	}

	for i, status := range statuses {
		customer := customers[i%len(customers)]
		first := products[i%len(products)]
		second := products[(i+1)%len(products)]

		items := []models.OrderItem{
			{ProductID: first.ID, Quantity: 1 + i%3, UnitPrice: first.Price},
			{ProductID: second.ID, Quantity: 1, UnitPrice: second.Price},
		}

		var total float64
		for _, item := range items {
			total += float64(item.Quantity) * item.UnitPrice
		}

		order := models.Order{
			UserID: customer.ID,
			Status: status,
			Total:  total,
			Items:  items,
		}
		order.CreatedAt = time.Now().AddDate(0, 0, -7*i)

		if err := db.Create(&order).Error; err != nil {
			return err
		}
	}
	return nil
}
