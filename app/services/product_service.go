package services

import (
	"errors"

	"github.com/atelierhq/atelier/app/models"
	"github.com/atelierhq/atelier/app/repositories"
	"github.com/atelierhq/atelier/pkg/orm"
	"gorm.io/gorm"
)

// ErrProductNotFound is returned when a product id does not exist.
var ErrProductNotFound = errors.New("product not found")

// ProductInput is the accepted shape for creating or editing a product.
type ProductInput struct {
	Name        string  `json:"name"        validate:"required,min=2,max=255"`
	Description string  `json:"description" validate:"nullable,max=5000"`
	Price       float64 `json:"price"       validate:"required,gte=0"`
	Stock       int     `json:"stock"       validate:"gte=0"`
	ImageURL    string  `json:"image_url"   validate:"nullable,max=500"`
	SKU         string  `json:"sku"         validate:"nullable,max=100"`
}

// ProductService handles catalogue reads and admin edits.
type ProductService struct {
	products *repositories.ProductRepository
}

func NewProductService() *ProductService {
	return &ProductService{products: repositories.NewProductRepository()}
}

// All returns the whole catalogue, newest first.
func (s *ProductService) All() ([]models.Product, error) {
	return s.products.All()
}

// Catalogue returns the storefront grid through the short-lived cache.
func (s *ProductService) Catalogue() ([]models.Product, error) {
	return s.products.AllCached()
}

// List returns one page of the catalogue.
func (s *ProductService) List(page, perPage int) ([]models.Product, orm.Pagination, error) {
	return s.products.Page(page, perPage)
}

// Find loads one product by id.
func (s *ProductService) Find(id uint) (models.Product, error) {
	product, err := s.products.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, ErrProductNotFound
	}
	return product, err
}

// Create adds a product to the catalogue.
func (s *ProductService) Create(in ProductInput) (models.Product, error) {
	product := models.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		ImageURL:    in.ImageURL,
		SKU:         in.SKU,
	}
	if err := s.products.Create(&product); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// Update overwrites an existing product's editable fields.
func (s *ProductService) Update(id uint, in ProductInput) (models.Product, error) {
	product, err := s.Find(id)
	if err != nil {
		return models.Product{}, err
	}

	product.Name = in.Name
	product.Description = in.Description
	product.Price = in.Price
	product.Stock = in.Stock
	product.ImageURL = in.ImageURL
	product.SKU = in.SKU

	if err := s.products.Update(&product); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// Delete removes a product from the catalogue.
func (s *ProductService) Delete(id uint) error {
	product, err := s.Find(id)
	if err != nil {
		return err
	}
	return s.products.Delete(&product)
}
