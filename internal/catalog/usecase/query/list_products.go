package query

import (
	"context"
	"fmt"

	"github.com/kemasindo/storefront/internal/catalog/domain"
)

// ListProductsQuery represents the query for a catalog snapshot
type ListProductsQuery struct {
	Category string // Optional: narrow the snapshot to one category
}

// ListProductsHandler loads the catalog snapshot
type ListProductsHandler struct {
	repo domain.CatalogRepository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(repo domain.CatalogRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle fetches the full product set ordered by descending creation
// time and applies the category filter. The snapshot is all-or-nothing:
// a store failure returns no partial data and is not retried here.
func (h *ListProductsHandler) Handle(ctx context.Context, query ListProductsQuery) ([]domain.Product, error) {
	products, err := h.repo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	return domain.FilterByCategory(products, query.Category), nil
}
