package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/kemasindo/storefront/internal/cart/domain"
	catalog "github.com/kemasindo/storefront/internal/catalog/domain"
	"github.com/kemasindo/storefront/pkg/logger"
)

// ProductFinder is the read-only view of the products table the cart
// needs; satisfied by the catalog repository.
type ProductFinder interface {
	FindByID(ctx context.Context, id uint) (*catalog.Product, error)
}

// EventPublisher publishes cart notifications; nil disables publishing
type EventPublisher interface {
	PublishCartItemAdded(ctx context.Context, userID, productID uint, productName string, quantity int) error
}

// AddToCartCommand represents one add-to-cart action. UserID zero means
// no identity is present.
type AddToCartCommand struct {
	UserID    uint
	ProductID uint
}

// AddToCartResult carries the updated row plus the product for display
type AddToCartResult struct {
	Item    *domain.CartItem
	Product *catalog.Product
}

// AddToCartHandler reconciles add-to-cart actions with the cart table.
// Each successful invocation increments the quantity held for the
// (user, product) pair by exactly one, creating the row on first add.
type AddToCartHandler struct {
	repo     domain.CartRepository
	products ProductFinder
	events   EventPublisher
	locks    *pairLocks
}

// NewAddToCartHandler creates a new add to cart handler
func NewAddToCartHandler(repo domain.CartRepository, products ProductFinder, events EventPublisher) *AddToCartHandler {
	return &AddToCartHandler{
		repo:     repo,
		products: products,
		events:   events,
		locks:    newPairLocks(),
	}
}

// Handle executes the add to cart command.
//
// The protocol is read-then-write: find the existing row, then either
// increment it by its own ID or insert a fresh row with quantity 1.
// Two defenses close the check-then-act race between those steps:
// mutations for one (user, product) pair are serialized through a
// per-pair lock, and the table's unique index on the pair turns a
// cross-process double insert into ErrDuplicateItem, after which the
// add falls back to a re-read and increment.
//
// Stock is advisory display state and does not gate the add; the "buy"
// control for depleted products is disabled upstream.
func (h *AddToCartHandler) Handle(ctx context.Context, cmd AddToCartCommand) (*AddToCartResult, error) {
	if cmd.UserID == 0 {
		return nil, domain.ErrUnauthenticated
	}

	product, err := h.products.FindByID(ctx, cmd.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve product: %w", err)
	}

	unlock := h.locks.Lock(cmd.UserID, cmd.ProductID)
	defer unlock()

	item, err := h.addOnce(ctx, cmd)
	if err != nil {
		return nil, err
	}

	h.publishAdded(ctx, cmd, product, item.Quantity)

	return &AddToCartResult{Item: item, Product: product}, nil
}

func (h *AddToCartHandler) addOnce(ctx context.Context, cmd AddToCartCommand) (*domain.CartItem, error) {
	existing, err := h.repo.FindItem(ctx, cmd.UserID, cmd.ProductID)
	switch {
	case err == nil:
		// Increment by the row's own ID, never by the pair, so a
		// concurrently created sibling row is left alone.
		return h.repo.UpdateQuantity(ctx, existing.ID, existing.Quantity+1)

	case errors.Is(err, domain.ErrItemNotFound):
		item, insErr := h.repo.Insert(ctx, cmd.UserID, cmd.ProductID, 1)
		if errors.Is(insErr, domain.ErrDuplicateItem) {
			// Another process created the row between our read and
			// write; the unique index caught it. Re-read and increment.
			return h.incrementExisting(ctx, cmd)
		}
		return item, insErr

	default:
		return nil, err
	}
}

func (h *AddToCartHandler) incrementExisting(ctx context.Context, cmd AddToCartCommand) (*domain.CartItem, error) {
	existing, err := h.repo.FindItem(ctx, cmd.UserID, cmd.ProductID)
	if err != nil {
		return nil, err
	}
	return h.repo.UpdateQuantity(ctx, existing.ID, existing.Quantity+1)
}

// publishAdded emits the notification event. Publishing is best-effort:
// the add has already committed and is reported as a success.
func (h *AddToCartHandler) publishAdded(ctx context.Context, cmd AddToCartCommand, product *catalog.Product, quantity int) {
	if h.events == nil {
		return
	}
	if err := h.events.PublishCartItemAdded(ctx, cmd.UserID, cmd.ProductID, product.Name, quantity); err != nil {
		logger.Warn(ctx).
			Err(err).
			Uint("user_id", cmd.UserID).
			Uint("product_id", cmd.ProductID).
			Msg("Failed to publish cart event")
	}
}
