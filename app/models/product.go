package models

import "gorm.io/gorm"

// Product represents an item in the catalogue.
type Product struct {
	gorm.Model
	Name        string  `gorm:"size:255;not null;index" json:"name"`
	Description string  `gorm:"type:text"              json:"description"`
	Price       float64 `gorm:"not null;default:0"     json:"price"`
	Stock       int     `gorm:"not null;default:0"     json:"stock"`
	ImageURL    string  `gorm:"size:500"               json:"image_url"`
	SKU         string  `gorm:"size:100;uniqueIndex"   json:"sku"`
}

// InStock reports whether the product can currently be ordered.
func (p Product) InStock() bool { return p.Stock > 0 }
