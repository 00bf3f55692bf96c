package services

import (
	"errors"
	"fmt"

	"github.com/atelierhq/atelier/app/models"
	"github.com/atelierhq/atelier/app/repositories"
	"github.com/atelierhq/atelier/pkg/orm"
	"gorm.io/gorm"
)

// ErrOrderNotFound is returned when an order id does not exist.
var ErrOrderNotFound = errors.New("order not found")

// OrderService handles order listing and lifecycle changes.
type OrderService struct {
	orders *repositories.OrderRepository
}

func NewOrderService() *OrderService {
	return &OrderService{orders: repositories.NewOrderRepository()}
}

// List returns one page of orders, newest first.
func (s *OrderService) List(page, perPage int) ([]models.Order, orm.Pagination, error) {
	return s.orders.Page(page, perPage)
}

// Find loads one order with its customer and line items.
func (s *OrderService) Find(id uint) (models.Order, error) {
	order, err := s.orders.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Order{}, ErrOrderNotFound
	}
	return order, err
}

// UpdateStatus moves an order to the given status. Any member of the
// status set is accepted as a target regardless of the current status;
// raw values outside the set are rejected before touching the database.
func (s *OrderService) UpdateStatus(id uint, raw string) (models.Order, error) {
	status, err := models.ParseOrderStatus(raw)
	if err != nil {
		return models.Order{}, fmt.Errorf("update order %d: %w", id, err)
	}

	order, err := s.Find(id)
	if err != nil {
		return models.Order{}, err
	}

	order.Status = status
	if err := s.orders.Update(&order); err != nil {
		return models.Order{}, fmt.Errorf("update order %d: %w", id, err)
	}
	return order, nil
}
