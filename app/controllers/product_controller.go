package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/atelierhq/atelier/app/models"
	"github.com/atelierhq/atelier/app/services"
	"github.com/atelierhq/atelier/app/views"
	"github.com/atelierhq/atelier/pkg/logger"
	"github.com/atelierhq/atelier/pkg/validate"
)

type ProductController struct {
	products *services.ProductService
}

func NewProductController() *ProductController {
	return &ProductController{products: services.NewProductService()}
}

// Index lists the catalogue for the back office, 20 per page.
func (c *ProductController) Index(w http.ResponseWriter, r *http.Request) {
	products, pagination, err := c.products.List(pageParam(r), 20)
	if err != nil {
		logger.Error("products: list failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	views.Render(w, "products", map[string]interface{}{
		"Products":   products,
		"Pagination": pagination,
	})
}

// New renders an empty product form.
func (c *ProductController) New(w http.ResponseWriter, r *http.Request) {
	views.Render(w, "product_form", map[string]interface{}{
		"Product": models.Product{},
		"Action":  "/admin/products",
	})
}

// Create adds a product from the submitted form.
func (c *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	in, ok := productInputFromForm(r)
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if errs := validate.Struct(&in); validate.HasErrors(errs) {
		views.Render(w, "product_form", map[string]interface{}{
			"Product": models.Product{Name: in.Name, Description: in.Description, Price: in.Price, Stock: in.Stock, ImageURL: in.ImageURL, SKU: in.SKU},
			"Action":  "/admin/products",
			"Errors":  errs,
		})
		return
	}

	if _, err := c.products.Create(in); err != nil {
		logger.Error("products: create failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/admin/products", http.StatusSeeOther)
}

// Edit renders the form pre-filled with an existing product.
func (c *ProductController) Edit(w http.ResponseWriter, r *http.Request) {
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
		logger.Error("products: load failed", "id", id, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	views.Render(w, "product_form", map[string]interface{}{
		"Product": product,
		"Action":  "/admin/products/" + strconv.FormatUint(uint64(id), 10),
	})
}

// Update overwrites a product from the submitted form.
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	in, ok := productInputFromForm(r)
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if errs := validate.Struct(&in); validate.HasErrors(errs) {
		views.Render(w, "product_form", map[string]interface{}{
			"Product": models.Product{Name: in.Name, Description: in.Description, Price: in.Price, Stock: in.Stock, ImageURL: in.ImageURL, SKU: in.SKU},
			"Action":  "/admin/products/" + strconv.FormatUint(uint64(id), 10),
			"Errors":  errs,
		})
		return
	}

	if _, err := c.products.Update(id, in); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			http.NotFound(w, r)
			return
		}
		logger.Error("products: update failed", "id", id, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/admin/products", http.StatusSeeOther)
}

// Delete removes a product and returns to the list.
func (c *ProductController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	if err := c.products.Delete(id); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			http.NotFound(w, r)
			return
		}
		logger.Error("products: delete failed", "id", id, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/admin/products", http.StatusSeeOther)
}

func productInputFromForm(r *http.Request) (services.ProductInput, bool) {
	if err := r.ParseForm(); err != nil {
		return services.ProductInput{}, false
	}

	price, err := strconv.ParseFloat(r.PostFormValue("price"), 64)
	if err != nil {
		price = 0
	}
	stock, err := strconv.Atoi(r.PostFormValue("stock"))
	if err != nil {
		stock = 0
	}

	return services.ProductInput{
		Name:        r.PostFormValue("name"),
		Description: r.PostFormValue("description"),
		Price:       price,
		Stock:       stock,
		ImageURL:    r.PostFormValue("image_url"),
		SKU:         r.PostFormValue("sku"),
	}, true
}
