package query

import (
	"context"

	"github.com/kemasindo/storefront/internal/cart/domain"
)

// GetCartQuery represents the query for a user's cart contents
type GetCartQuery struct {
	UserID uint
}

// GetCartHandler handles cart listing
type GetCartHandler struct {
	repo domain.CartRepository
}

// NewGetCartHandler creates a new get cart handler
func NewGetCartHandler(repo domain.CartRepository) *GetCartHandler {
	return &GetCartHandler{repo: repo}
}

// Handle returns all cart rows for the user, oldest first
func (h *GetCartHandler) Handle(ctx context.Context, query GetCartQuery) ([]domain.CartItem, error) {
	if query.UserID == 0 {
		return nil, domain.ErrUnauthenticated
	}
	return h.repo.ListByUser(ctx, query.UserID)
}
