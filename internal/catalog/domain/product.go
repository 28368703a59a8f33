package domain

import (
	"context"
	"errors"
	"time"
)

// Known product categories. The category set is open: rows may carry
// values outside this list and the filter still works on them.
const (
	CategoryAll     = "all"
	CategorySoftBox = "softBox"
	CategoryFoodBox = "foodBox"
)

// KnownCategories lists the categories the storefront filter offers
var KnownCategories = []string{CategorySoftBox, CategoryFoodBox}

var (
	// ErrProductNotFound is returned when no product matches the lookup
	ErrProductNotFound = errors.New("product not found")
	// ErrStore wraps failures coming from the remote data store
	ErrStore = errors.New("store error")
)

// Product represents a catalog entry. From the storefront's point of
// view products are read-only; rows are owned by the data store and
// only change through admin writes.
type Product struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Category    string    `json:"category" gorm:"index;not null"`
	Price       int64     `json:"price" gorm:"not null"` // smallest currency unit (IDR)
	Stock       int       `json:"stock" gorm:"not null;default:0"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// InStock reports whether the product has remaining stock. Stock is
// advisory for display; it does not gate cart mutations.
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// FilterByCategory narrows a catalog snapshot to one category,
// preserving relative order. CategoryAll returns the snapshot as-is.
func FilterByCategory(products []Product, selector string) []Product {
	if selector == "" || selector == CategoryAll {
		return products
	}
	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if p.Category == selector {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// CatalogRepository defines the contract for product data access
type CatalogRepository interface {
	// ListProducts returns the full product set ordered by descending
	// creation time.
	ListProducts(ctx context.Context) ([]Product, error)
	FindByID(ctx context.Context, id uint) (*Product, error)
	Create(ctx context.Context, product *Product) error
	Count(ctx context.Context) (int64, error)
}
