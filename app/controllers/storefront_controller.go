package controllers

import (
	"errors"
	"net/http"

	"github.com/atelierhq/atelier/app/services"
	"github.com/atelierhq/atelier/app/views"
	"github.com/atelierhq/atelier/pkg/logger"
)

type StorefrontController struct {
	products *services.ProductService
}

func NewStorefrontController() *StorefrontController {
	return &StorefrontController{products: services.NewProductService()}
}

// Home renders the public product grid.
func (c *StorefrontController) Home(w http.ResponseWriter, r *http.Request) {
	products, err := c.products.Catalogue()
	if err != nil {
		logger.Error("storefront: catalogue failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	views.Render(w, "storefront", map[string]interface{}{
		"Products": products,
	})
}

// Product renders one public product page.
func (c *StorefrontController) Product(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	product, err := c.products.Find(id)
	if errors.Is(err, services.ErrProductNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		logger.Error("storefront: product failed", "id", id, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	views.Render(w, "product", map[string]interface{}{
		"Product": product,
	})
}
