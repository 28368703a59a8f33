package domain

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrUnauthenticated is returned when a cart mutation is attempted
	// with no identity present; the caller must redirect to sign-in.
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrItemNotFound is returned when no cart row matches the lookup
	ErrItemNotFound = errors.New("cart item not found")

	// ErrDuplicateItem is returned by Insert when the store's unique
	// constraint on (user_id, product_id) rejects the row. It means a
	// concurrent insert won the race and the add must fall back to an
	// increment.
	ErrDuplicateItem = errors.New("cart item already exists")

	// ErrCartIntegrity is returned when more than one row exists for a
	// (user, product) pair. The invariant has been violated; this is
	// surfaced, never silently merged.
	ErrCartIntegrity = errors.New("cart integrity violation: duplicate rows for user/product pair")

	// ErrStore wraps failures coming from the remote data store
	ErrStore = errors.New("store error")
)

// CartItem holds one product in one user's cart. At most one row may
// exist per (user, product) pair; the quantity absorbs repeated adds.
type CartItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_cart_items_user_product"`
	ProductID uint      `json:"product_id" gorm:"not null;uniqueIndex:idx_cart_items_user_product"`
	Quantity  int       `json:"quantity" gorm:"not null;default:1"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (CartItem) TableName() string {
	return "cart_items"
}

// CartRepository defines the contract for cart data access
type CartRepository interface {
	// FindItem returns the row for (userID, productID), ErrItemNotFound
	// when none exists, or ErrCartIntegrity when more than one does.
	FindItem(ctx context.Context, userID, productID uint) (*CartItem, error)
	// Insert creates a new row with the given quantity. Returns
	// ErrDuplicateItem when the pair already has a row.
	Insert(ctx context.Context, userID, productID uint, quantity int) (*CartItem, error)
	// UpdateQuantity sets the quantity of the row identified by id.
	// Keyed by the row's own ID so a concurrently created sibling row is
	// never touched.
	UpdateQuantity(ctx context.Context, id uint, quantity int) (*CartItem, error)
	// ListByUser returns all cart rows for a user, oldest first.
	ListByUser(ctx context.Context, userID uint) ([]CartItem, error)
	// Remove deletes the row identified by id, scoped to the owning
	// user. Returns ErrItemNotFound when no such row exists.
	Remove(ctx context.Context, userID, id uint) error
}
