package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kemasindo/storefront/internal/catalog/domain"
)

type stubCatalogRepository struct {
	products []domain.Product
	err      error
}

func (s *stubCatalogRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.products, nil
}

func (s *stubCatalogRepository) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	for i := range s.products {
		if s.products[i].ID == id {
			return &s.products[i], nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (s *stubCatalogRepository) Create(ctx context.Context, product *domain.Product) error {
	s.products = append(s.products, *product)
	return nil
}

func (s *stubCatalogRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(s.products)), nil
}

func TestListProducts(t *testing.T) {
	repo := &stubCatalogRepository{
		products: []domain.Product{
			{ID: 3, Name: "Soft Box Premium", Category: domain.CategorySoftBox, Stock: 150},
			{ID: 2, Name: "Paper Lunch Box", Category: domain.CategoryFoodBox, Stock: 0},
			{ID: 1, Name: "Soft Box Standar", Category: domain.CategorySoftBox, Stock: 75},
		},
	}
	handler := NewListProductsHandler(repo)

	t.Run("returns full snapshot without a category", func(t *testing.T) {
		products, err := handler.Handle(context.Background(), ListProductsQuery{})
		require.NoError(t, err)
		assert.Len(t, products, 3)
		// Repository order carries through untouched
		assert.Equal(t, uint(3), products[0].ID)
		assert.Equal(t, uint(1), products[2].ID)
	})

	t.Run("applies the category filter", func(t *testing.T) {
		products, err := handler.Handle(context.Background(), ListProductsQuery{Category: domain.CategoryFoodBox})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Paper Lunch Box", products[0].Name)
	})

	t.Run("store failure yields no partial data", func(t *testing.T) {
		broken := &stubCatalogRepository{err: domain.ErrStore}
		products, err := NewListProductsHandler(broken).Handle(context.Background(), ListProductsQuery{})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrStore)
		assert.Nil(t, products)
	})
}
