package controllers

import (
	"errors"
	"net/http"

	"github.com/atelierhq/atelier/app/services"
	"github.com/atelierhq/atelier/pkg/logger"
	"github.com/atelierhq/atelier/pkg/response"
)

type ProductAPIController struct {
	products *services.ProductService
}

func NewProductAPIController() *ProductAPIController {
	return &ProductAPIController{products: services.NewProductService()}
}

// Show returns one product as JSON. Unknown ids get a 404 with
// {"error":"Product not found"}; database failures a 500 with
// {"error":"Failed to fetch product"}.
func (c *ProductAPIController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(r)
	if !ok {
		response.NotFound(w, "Product not found")
		return
	}

	product, err := c.products.Find(id)
	if errors.Is(err, services.ErrProductNotFound) {
		response.NotFound(w, "Product not found")
		return
	}
	if err != nil {
		logger.Error("api: product fetch failed", "id", id, "error", err)
		response.Error(w, http.StatusInternalServerError, "Failed to fetch product")
		return
	}

	response.JSON(w, http.StatusOK, product)
}
