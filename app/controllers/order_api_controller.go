package controllers

import (
	"net/http"

	"github.com/atelierhq/atelier/app/models"
	"github.com/atelierhq/atelier/app/services"
	"github.com/atelierhq/atelier/pkg/collection"
	"github.com/atelierhq/atelier/pkg/logger"
	"github.com/atelierhq/atelier/pkg/resource"
)

type OrderAPIController struct {
	orders *services.OrderService
}

func NewOrderAPIController() *OrderAPIController {
	return &OrderAPIController{orders: services.NewOrderService()}
}

// orderResource shapes one order for API clients.
func orderResource(o models.Order) resource.Map {
	return resource.Map{
		"id":     o.ID,
		"total":  o.Total,
		"status": o.Status,
		"placed": o.CreatedAt,
		"customer": resource.Map{
			"id":    o.User.ID,
			"name":  o.User.Name,
			"email": o.User.Email,
		},
		"items": collection.Map(o.Items, func(i models.OrderItem) resource.Map {
			return resource.Map{
				"product_id": i.ProductID,
				"quantity":   i.Quantity,
				"unit_price": i.UnitPrice,
				"subtotal":   i.Subtotal(),
			}
		}),
	}
}

// Index lists orders for authenticated API clients, newest first.
func (c *OrderAPIController) Index(w http.ResponseWriter, r *http.Request) {
	orders, pagination, err := c.orders.List(pageParam(r), 20)
	if err != nil {
		logger.Error("api: orders list failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	resource.List(w, orderResource, orders, &pagination)
}
