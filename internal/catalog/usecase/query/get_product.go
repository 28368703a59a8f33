package query

import (
	"context"
	"fmt"

	"github.com/kemasindo/storefront/internal/catalog/domain"
)

// GetProductQuery represents the query to get a single product
type GetProductQuery struct {
	ID uint
}

// GetProductHandler handles single-product lookups
type GetProductHandler struct {
	repo domain.CatalogRepository
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(repo domain.CatalogRepository) *GetProductHandler {
	return &GetProductHandler{repo: repo}
}

// Handle executes the get product query
func (h *GetProductHandler) Handle(ctx context.Context, query GetProductQuery) (*domain.Product, error) {
	if query.ID == 0 {
		return nil, fmt.Errorf("product ID is required")
	}
	return h.repo.FindByID(ctx, query.ID)
}
