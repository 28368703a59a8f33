package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/kemasindo/storefront/internal/cart/domain"
)

type GormCartRepository struct {
	db *gorm.DB
}

func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

func (r *GormCartRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.CartItem{})
}

// FindItem looks up the row for (userID, productID). The query fetches
// up to two rows so a violated pair invariant is detected rather than
// masked by a LIMIT 1.
func (r *GormCartRepository) FindItem(ctx context.Context, userID, productID uint) (*domain.CartItem, error) {
	var items []domain.CartItem
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Limit(2).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStore, err)
	}

	switch len(items) {
	case 0:
		return nil, domain.ErrItemNotFound
	case 1:
		return &items[0], nil
	default:
		return nil, domain.ErrCartIntegrity
	}
}

func (r *GormCartRepository) Insert(ctx context.Context, userID, productID uint, quantity int) (*domain.CartItem, error) {
	item := &domain.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}

	err := r.db.WithContext(ctx).Create(item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrDuplicateItem
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrStore, err)
	}
	return item, nil
}

func (r *GormCartRepository) UpdateQuantity(ctx context.Context, id uint, quantity int) (*domain.CartItem, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}

	result := r.db.WithContext(ctx).
		Model(&domain.CartItem{}).
		Where("id = ?", id).
		Update("quantity", quantity)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStore, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrItemNotFound
	}

	var item domain.CartItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStore, err)
	}
	return &item, nil
}

func (r *GormCartRepository) ListByUser(ctx context.Context, userID uint) ([]domain.CartItem, error) {
	var items []domain.CartItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStore, err)
	}
	return items, nil
}

func (r *GormCartRepository) Remove(ctx context.Context, userID, id uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&domain.CartItem{})
	if result.Error != nil {
		return fmt.Errorf("%w: %v", domain.ErrStore, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}
