package command

import (
	"context"
	"fmt"

	"github.com/kemasindo/storefront/internal/catalog/domain"
)

// CreateProductCommand represents the command to create a new product
type CreateProductCommand struct {
	Name        string
	Category    string
	Price       int64
	Stock       int
	Description string
	ImageURL    string
}

// CreateProductHandler handles product creation (admin surface)
type CreateProductHandler struct {
	repo domain.CatalogRepository
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(repo domain.CatalogRepository) *CreateProductHandler {
	return &CreateProductHandler{repo: repo}
}

// Handle executes the create product command
func (h *CreateProductHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*domain.Product, error) {
	// Validation
	if cmd.Name == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if cmd.Category == "" {
		return nil, fmt.Errorf("product category is required")
	}
	if cmd.Price < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}
	if cmd.Stock < 0 {
		return nil, fmt.Errorf("stock cannot be negative")
	}

	product := &domain.Product{
		Name:        cmd.Name,
		Category:    cmd.Category,
		Price:       cmd.Price,
		Stock:       cmd.Stock,
		Description: cmd.Description,
		ImageURL:    cmd.ImageURL,
	}

	if err := h.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}
