package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kemasindo/storefront/internal/catalog/domain"
	"gorm.io/gorm"
)

var tracer = otel.Tracer("catalog-repository")

// TracingCatalogRepository wraps GormCatalogRepository with tracing
type TracingCatalogRepository struct {
	*GormCatalogRepository
}

// NewTracingCatalogRepository creates a new repository with tracing
func NewTracingCatalogRepository(db *gorm.DB) *TracingCatalogRepository {
	return &TracingCatalogRepository{
		GormCatalogRepository: NewGormCatalogRepository(db),
	}
}

func (r *TracingCatalogRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.ListProducts")
	defer span.End()

	products, err := r.GormCatalogRepository.ListProducts(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("catalog.snapshot_size", len(products)))
	return products, nil
}

func (r *TracingCatalogRepository) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(attribute.Int("product.id", int(id))),
	)
	defer span.End()

	product, err := r.GormCatalogRepository.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return product, nil
}

func (r *TracingCatalogRepository) Create(ctx context.Context, product *domain.Product) error {
	ctx, span := tracer.Start(ctx, "repository.Create")
	defer span.End()

	if err := r.GormCatalogRepository.Create(ctx, product); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(
		attribute.Int("product.id", int(product.ID)),
		attribute.String("product.category", product.Category),
	)
	return nil
}
