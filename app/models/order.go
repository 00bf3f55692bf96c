package models

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// OrderStatus is the lifecycle state of an order. The set is closed:
// values outside AllOrderStatuses are rejected at the boundary.
type OrderStatus string

const (
	StatusPending    OrderStatus = "PENDING"
	StatusProcessing OrderStatus = "PROCESSING"
	StatusShipped    OrderStatus = "SHIPPED"
	StatusCompleted  OrderStatus = "COMPLETED"
	StatusCancelled  OrderStatus = "CANCELLED"
)

// AllOrderStatuses lists every valid status in display order.
var AllOrderStatuses = []OrderStatus{
	StatusPending,
	StatusProcessing,
	StatusShipped,
	StatusCompleted,
	StatusCancelled,
}

// ParseOrderStatus maps a raw string (any case) to a member of the status
// set, or an error when the value is not a member.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	s := OrderStatus(strings.ToUpper(strings.TrimSpace(raw)))
	for _, known := range AllOrderStatuses {
		if s == known {
			return s, nil
		}
	}
	return "", fmt.Errorf("invalid order status %q", raw)
}

// Label returns the human-readable form shown in the back office.
func (s OrderStatus) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusProcessing:
		return "Processing"
	case StatusShipped:
		return "Shipped"
	case StatusCompleted:
		return "Completed"
	case StatusCancelled:
		return "Cancelled"
	}
	return string(s)
}

// Color returns the badge colour used when rendering the status.
func (s OrderStatus) Color() string {
	switch s {
	case StatusPending:
		return "yellow"
	case StatusProcessing:
		return "blue"
	case StatusShipped:
		return "purple"
	case StatusCompleted:
		return "green"
	case StatusCancelled:
		return "red"
	}
	return "gray"
}

// Order is a customer purchase with its line items.
type Order struct {
	gorm.Model
	UserID uint        `gorm:"not null;index" json:"user_id"`
	User   User        `json:"user,omitempty"`
	Total  float64     `gorm:"not null;default:0" json:"total"`
	Status OrderStatus `gorm:"size:50;default:PENDING;index" json:"status"`

	Items []OrderItem `json:"items,omitempty"`
}

// OrderItem is one product line on an order. UnitPrice is copied from the
// product at purchase time so later catalogue edits do not rewrite history.
type OrderItem struct {
	gorm.Model
	OrderID   uint    `gorm:"not null;index" json:"order_id"`
	ProductID uint    `gorm:"not null;index" json:"product_id"`
	Product   Product `json:"product,omitempty"`
	Quantity  int     `gorm:"not null;default:1" json:"quantity"`
	UnitPrice float64 `gorm:"not null;default:0" json:"unit_price"`
}

// Subtotal is the line total for this item.
func (i OrderItem) Subtotal() float64 { return float64(i.Quantity) * i.UnitPrice }
