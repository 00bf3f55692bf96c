package repositories

import (
	"time"

	"github.com/atelierhq/atelier/app/models"
	"github.com/atelierhq/atelier/pkg/cache"
	"github.com/atelierhq/atelier/pkg/orm"
)

// catalogueKey caches the storefront product grid for a minute.
const catalogueKey = "atelier:products:catalogue"

// ProductRepository handles database operations for Product.
type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// FindByID looks up a product by primary key.
func (r *ProductRepository) FindByID(id uint) (models.Product, error) {
	var product models.Product
	err := orm.DB().Model(&models.Product{}).Where("id = ?", id).First(&product)
	return product, err
}

// FindByIDs loads the products for a set of primary keys.
func (r *ProductRepository) FindByIDs(ids []uint) ([]models.Product, error) {
	var products []models.Product
	if len(ids) == 0 {
		return products, nil
	}
	err := orm.DB().Model(&models.Product{}).Where("id IN ?", ids).Get(&products)
	return products, err
}

// All returns every product, newest first.
func (r *ProductRepository) All() ([]models.Product, error) {
	var products []models.Product
	err := orm.DB().Model(&models.Product{}).Order("created_at desc").Get(&products)
	return products, err
}

// Page returns one page of the catalogue, newest first.
func (r *ProductRepository) Page(page, perPage int) ([]models.Product, orm.Pagination, error) {
	var products []models.Product
	p, err := orm.DB().Model(&models.Product{}).
		Order("created_at desc").
		GetWithPagination(&products, page, perPage)
	return products, p, err
}

// AllCached returns the catalogue through the Redis read-through cache.
func (r *ProductRepository) AllCached() ([]models.Product, error) {
	var products []models.Product
	err := orm.DB().Model(&models.Product{}).
		Order("created_at desc").
		Cache(catalogueKey, time.Minute, &products)
	return products, err
}

// Create persists a new product.
func (r *ProductRepository) Create(product *models.Product) error {
	cache.Del(catalogueKey)
	return orm.DB().Create(product)
}

// Update persists changes to an existing product.
func (r *ProductRepository) Update(product *models.Product) error {
	cache.Del(catalogueKey)
	return orm.DB().Save(product)
}

// Delete soft-deletes a product.
func (r *ProductRepository) Delete(product *models.Product) error {
	cache.Del(catalogueKey)
	return orm.DB().Delete(product)
}

// Count returns the catalogue size.
func (r *ProductRepository) Count() (int64, error) {
	return orm.DB().Model(&models.Product{}).Count()
}
