// Package orm is a thin, chainable query layer over the global GORM handle.
//
// Repositories start a chain with orm.DB() and finish with Get, First,
// Count or GetWithPagination. Cache() reads through Redis with a TTL:
//
//	var products []models.Product
//	err := orm.DB().Model(&models.Product{}).
//	    Order("created_at desc").
//	    Cache("products:newest", time.Minute, &products)
package orm

import (
	"time"

	"github.com/atelierhq/atelier/pkg/cache"
	"github.com/atelierhq/atelier/pkg/database"
	"gorm.io/gorm"
)

// Pagination describes one page of a larger result set.
type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

type Query struct {
	db *gorm.DB
}

// DB starts a query chain on the global connection.
func DB() *Query {
	return &Query{db: database.DB}
}

// WithDB starts a chain on an explicit connection (tests use this).
func WithDB(db *gorm.DB) *Query {
	return &Query{db: db}
}

// Dialect reports the SQL dialect of the active connection
// ("postgres", "mysql", "sqlite", "sqlserver").
func Dialect() string {
	return database.DB.Dialector.Name()
}

func (q *Query) Model(v interface{}) *Query {
	return &Query{db: q.db.Model(v)}
}

func (q *Query) Where(query string, args ...interface{}) *Query {
	return &Query{db: q.db.Where(query, args...)}
}

func (q *Query) Order(value string) *Query {
	return &Query{db: q.db.Order(value)}
}

func (q *Query) Limit(n int) *Query {
	return &Query{db: q.db.Limit(n)}
}

func (q *Query) Preload(association string) *Query {
	return &Query{db: q.db.Preload(association)}
}

func (q *Query) Select(query string, args ...interface{}) *Query {
	return &Query{db: q.db.Select(query, args...)}
}

func (q *Query) Joins(query string, args ...interface{}) *Query {
	return &Query{db: q.db.Joins(query, args...)}
}

func (q *Query) Group(name string) *Query {
	return &Query{db: q.db.Group(name)}
}

// Raw starts a raw SQL query; finish with Scan.
func (q *Query) Raw(sql string, args ...interface{}) *Query {
	return &Query{db: q.db.Raw(sql, args...)}
}

// Scan loads an aggregate or raw query result into dest.
func (q *Query) Scan(dest interface{}) error {
	return q.db.Scan(dest).Error
}

// Get loads all matching rows into dest.
func (q *Query) Get(dest interface{}) error {
	return q.db.Find(dest).Error
}

// First loads the first matching row; gorm.ErrRecordNotFound when none.
func (q *Query) First(dest interface{}) error {
	return q.db.First(dest).Error
}

// Count counts matching rows.
func (q *Query) Count() (int64, error) {
	var n int64
	err := q.db.Count(&n).Error
	return n, err
}

func (q *Query) Create(v interface{}) error { return q.db.Create(v).Error }
func (q *Query) Save(v interface{}) error   { return q.db.Save(v).Error }
func (q *Query) Delete(v interface{}) error { return q.db.Delete(v).Error }

// GetWithPagination loads one page of results and returns page metadata.
func (q *Query) GetWithPagination(dest interface{}, page, perPage int) (Pagination, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}

	var total int64
	if err := q.db.Count(&total).Error; err != nil {
		return Pagination{}, err
	}

	offset := (page - 1) * perPage
	if err := q.db.Offset(offset).Limit(perPage).Find(dest).Error; err != nil {
		return Pagination{}, err
	}

	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	return Pagination{Page: page, PerPage: perPage, Total: total, TotalPages: totalPages}, nil
}

// Cache reads dest from Redis under key, falling back to the database and
// writing the result back with the given TTL on a miss.
func (q *Query) Cache(key string, ttl time.Duration, dest interface{}) error {
	if cache.Get(key, dest) {
		return nil
	}

	if err := q.db.Find(dest).Error; err != nil {
		return err
	}

	cache.Set(key, dest, ttl)
	return nil
}
