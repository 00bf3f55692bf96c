package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/atelierhq/atelier/app/models"
	"github.com/atelierhq/atelier/app/services"
	"github.com/atelierhq/atelier/app/views"
	"github.com/atelierhq/atelier/pkg/logger"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController() *OrderController {
	return &OrderController{orders: services.NewOrderService()}
}

// Index lists orders, newest first, 20 per page.
func (c *OrderController) Index(w http.ResponseWriter, r *http.Request) {
	orders, pagination, err := c.orders.List(pageParam(r), 20)
	if err != nil {
		logger.Error("orders: list failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	views.Render(w, "orders", map[string]interface{}{
		"Orders":     orders,
		"Pagination": pagination,
	})
}

// Show renders one order with its line items and the status form.
func (c *OrderController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(r)
	if !ok {
		http.Redirect(w, r, "/admin/orders", http.StatusSeeOther)
		return
	}

	order, err := c.orders.Find(id)
	if errors.Is(err, services.ErrOrderNotFound) {
		http.Redirect(w, r, "/admin/orders", http.StatusSeeOther)
		return
	}
	if err != nil {
		logger.Error("orders: load failed", "id", id, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	views.Render(w, "order", map[string]interface{}{
		"Order":    order,
		"Statuses": models.AllOrderStatuses,
	})
}

// UpdateStatus moves an order to the submitted status and redirects back
// to the order page.
func (c *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(r)
	if !ok {
		http.Redirect(w, r, "/admin/orders", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	raw := r.PostFormValue("status")
	if _, err := models.ParseOrderStatus(raw); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if _, err := c.orders.UpdateStatus(id, raw); err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			http.Redirect(w, r, "/admin/orders", http.StatusSeeOther)
			return
		}
		logger.Error("orders: status update failed", "id", id, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/admin/orders/%d", id), http.StatusSeeOther)
}
