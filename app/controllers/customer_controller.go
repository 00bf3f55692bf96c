package controllers

import (
	"net/http"

	"github.com/atelierhq/atelier/app/services"
	"github.com/atelierhq/atelier/app/views"
	"github.com/atelierhq/atelier/pkg/logger"
)

type CustomerController struct {
	customers *services.CustomerService
}

func NewCustomerController() *CustomerController {
	return &CustomerController{customers: services.NewCustomerService()}
}

// Index renders the customers page with per-customer lifetime metrics.
func (c *CustomerController) Index(w http.ResponseWriter, r *http.Request) {
	overview, err := c.customers.Overview()
	if err != nil {
		logger.Error("customers: overview failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	views.Render(w, "customers", map[string]interface{}{
		"Overview": overview,
	})
}
