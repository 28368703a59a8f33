package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleCatalog() []Product {
	return []Product{
		{ID: 4, Name: "Kemasan Kotak Nasi", Category: CategoryFoodBox, Price: 2500, Stock: 0},
		{ID: 3, Name: "Soft Box Premium", Category: CategorySoftBox, Price: 4000, Stock: 150},
		{ID: 2, Name: "Paper Lunch Box", Category: CategoryFoodBox, Price: 1800, Stock: 320},
		{ID: 1, Name: "Soft Box Standar", Category: CategorySoftBox, Price: 3000, Stock: 75},
	}
}

func TestFilterByCategory(t *testing.T) {
	products := sampleCatalog()

	t.Run("all returns snapshot unchanged", func(t *testing.T) {
		got := FilterByCategory(products, CategoryAll)
		assert.Equal(t, products, got)
	})

	t.Run("empty selector returns snapshot unchanged", func(t *testing.T) {
		got := FilterByCategory(products, "")
		assert.Equal(t, products, got)
	})

	t.Run("narrows to one category preserving order", func(t *testing.T) {
		got := FilterByCategory(products, CategorySoftBox)
		assert.Len(t, got, 2)
		assert.Equal(t, uint(3), got[0].ID)
		assert.Equal(t, uint(1), got[1].ID)
	})

	t.Run("includes depleted products", func(t *testing.T) {
		got := FilterByCategory(products, CategoryFoodBox)
		assert.Len(t, got, 2)
		assert.Equal(t, 0, got[0].Stock)
		assert.False(t, got[0].InStock())
	})

	t.Run("unknown category yields empty set", func(t *testing.T) {
		got := FilterByCategory(products, "stickers")
		assert.Empty(t, got)
	})

	t.Run("does not mutate the snapshot", func(t *testing.T) {
		before := sampleCatalog()
		FilterByCategory(products, CategorySoftBox)
		assert.Equal(t, before, products)
	})
}

func TestInStock(t *testing.T) {
	inStock := Product{Stock: 150}
	depleted := Product{Stock: 0}

	assert.True(t, inStock.InStock())
	assert.False(t, depleted.InStock())
}
