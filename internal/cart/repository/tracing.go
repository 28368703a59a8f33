package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/kemasindo/storefront/internal/cart/domain"
)

var tracer = otel.Tracer("cart-repository")

// TracingCartRepository wraps GormCartRepository with tracing
type TracingCartRepository struct {
	*GormCartRepository
}

// NewTracingCartRepository creates a new repository with tracing
func NewTracingCartRepository(db *gorm.DB) *TracingCartRepository {
	return &TracingCartRepository{
		GormCartRepository: NewGormCartRepository(db),
	}
}

func (r *TracingCartRepository) FindItem(ctx context.Context, userID, productID uint) (*domain.CartItem, error) {
	ctx, span := tracer.Start(ctx, "repository.FindItem",
		trace.WithAttributes(
			attribute.Int("cart.user_id", int(userID)),
			attribute.Int("cart.product_id", int(productID)),
		),
	)
	defer span.End()

	item, err := r.GormCartRepository.FindItem(ctx, userID, productID)
	if err != nil {
		if err != domain.ErrItemNotFound {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return nil, err
	}

	span.SetAttributes(attribute.Int("cart.quantity", item.Quantity))
	return item, nil
}

func (r *TracingCartRepository) Insert(ctx context.Context, userID, productID uint, quantity int) (*domain.CartItem, error) {
	ctx, span := tracer.Start(ctx, "repository.Insert",
		trace.WithAttributes(
			attribute.Int("cart.user_id", int(userID)),
			attribute.Int("cart.product_id", int(productID)),
			attribute.Int("cart.quantity", quantity),
		),
	)
	defer span.End()

	item, err := r.GormCartRepository.Insert(ctx, userID, productID, quantity)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("cart.item_id", int(item.ID)))
	return item, nil
}

func (r *TracingCartRepository) UpdateQuantity(ctx context.Context, id uint, quantity int) (*domain.CartItem, error) {
	ctx, span := tracer.Start(ctx, "repository.UpdateQuantity",
		trace.WithAttributes(
			attribute.Int("cart.item_id", int(id)),
			attribute.Int("cart.quantity", quantity),
		),
	)
	defer span.End()

	item, err := r.GormCartRepository.UpdateQuantity(ctx, id, quantity)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return item, nil
}
