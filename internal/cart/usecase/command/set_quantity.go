package command

import (
	"context"
	"fmt"

	"github.com/kemasindo/storefront/internal/cart/domain"
)

// SetQuantityCommand represents the command to set a row's quantity
type SetQuantityCommand struct {
	UserID   uint
	ItemID   uint
	Quantity int
}

// SetQuantityHandler handles explicit quantity changes from the cart page
type SetQuantityHandler struct {
	repo domain.CartRepository
}

// NewSetQuantityHandler creates a new set quantity handler
func NewSetQuantityHandler(repo domain.CartRepository) *SetQuantityHandler {
	return &SetQuantityHandler{repo: repo}
}

// Handle executes the set quantity command. The row is addressed by its
// own ID and must belong to the requesting user, so the pair invariant
// cannot be violated here.
func (h *SetQuantityHandler) Handle(ctx context.Context, cmd SetQuantityCommand) (*domain.CartItem, error) {
	if cmd.UserID == 0 {
		return nil, domain.ErrUnauthenticated
	}
	if cmd.Quantity <= 0 {
		return nil, fmt.Errorf("quantity must be a positive integer")
	}

	items, err := h.repo.ListByUser(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if item.ID == cmd.ItemID {
			return h.repo.UpdateQuantity(ctx, cmd.ItemID, cmd.Quantity)
		}
	}
	return nil, domain.ErrItemNotFound
}
