package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductStatus string

const (
	ProductInStock    ProductStatus = "in_stock"
	ProductOutOfStock ProductStatus = "out_of_stock"
)

// StatusForStock derives the stock status stored alongside the counters.
func StatusForStock(stock int) ProductStatus {
	if stock > 0 {
		return ProductInStock
	}
	return ProductOutOfStock
}

type Collection struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Product struct {
	ID           string          `json:"id"`
	CollectionID *string         `json:"collection_id,omitempty"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	Description  string          `json:"description"`
	Material     string          `json:"material"`
	Gemstone     string          `json:"gemstone,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	SoldCount    int             `json:"sold_count"`
	Status       ProductStatus   `json:"status"`
	ImageURL     string          `json:"image_url,omitempty"`
	CloudinaryID string          `json:"cloudinary_id,omitempty"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductFilter is the typed filter for product listings.
type ProductFilter struct {
	Search       string
	CollectionID string
	Status       *ProductStatus
	Limit        int
	Offset       int
}
