package command

import (
	"context"

	"github.com/kemasindo/storefront/internal/cart/domain"
)

// RemoveItemCommand represents the command to remove a cart row
type RemoveItemCommand struct {
	UserID uint
	ItemID uint
}

// RemoveItemHandler handles explicit cart item removal
type RemoveItemHandler struct {
	repo domain.CartRepository
}

// NewRemoveItemHandler creates a new remove item handler
func NewRemoveItemHandler(repo domain.CartRepository) *RemoveItemHandler {
	return &RemoveItemHandler{repo: repo}
}

// Handle executes the remove item command. Removal is scoped to the
// owning user; removing someone else's row reports not found.
func (h *RemoveItemHandler) Handle(ctx context.Context, cmd RemoveItemCommand) error {
	if cmd.UserID == 0 {
		return domain.ErrUnauthenticated
	}
	return h.repo.Remove(ctx, cmd.UserID, cmd.ItemID)
}
