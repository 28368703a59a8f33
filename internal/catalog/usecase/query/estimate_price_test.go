package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimatePrice(t *testing.T) {
	handler := NewEstimatePriceHandler()

	t.Run("medium is the base rate", func(t *testing.T) {
		amount, err := handler.Handle(EstimatePriceQuery{Quantity: 100, Size: SizeMedium})
		require.NoError(t, err)
		assert.Equal(t, int64(100000), amount)
	})

	t.Run("small applies a discount", func(t *testing.T) {
		amount, err := handler.Handle(EstimatePriceQuery{Quantity: 100, Size: SizeSmall})
		require.NoError(t, err)
		assert.Equal(t, int64(80000), amount)
	})

	t.Run("large applies a surcharge", func(t *testing.T) {
		amount, err := handler.Handle(EstimatePriceQuery{Quantity: 100, Size: SizeLarge})
		require.NoError(t, err)
		assert.Equal(t, int64(130000), amount)
	})

	t.Run("rounds fractional amounts", func(t *testing.T) {
		// 1000 * 3 * 1.3 = 3900, 1000 * 1 * 1.3 = 1300; odd quantities
		// with small stay whole too: 1000 * 3 * 0.8 = 2400
		amount, err := handler.Handle(EstimatePriceQuery{Quantity: 3, Size: SizeLarge})
		require.NoError(t, err)
		assert.Equal(t, int64(3900), amount)
	})

	t.Run("monotone in quantity for a fixed size", func(t *testing.T) {
		prev := int64(0)
		for q := 1; q <= 50; q++ {
			amount, err := handler.Handle(EstimatePriceQuery{Quantity: q, Size: SizeLarge})
			require.NoError(t, err)
			assert.Greater(t, amount, prev)
			prev = amount
		}
	})

	t.Run("monotone across sizes for a fixed quantity", func(t *testing.T) {
		small, err := handler.Handle(EstimatePriceQuery{Quantity: 7, Size: SizeSmall})
		require.NoError(t, err)
		medium, err := handler.Handle(EstimatePriceQuery{Quantity: 7, Size: SizeMedium})
		require.NoError(t, err)
		large, err := handler.Handle(EstimatePriceQuery{Quantity: 7, Size: SizeLarge})
		require.NoError(t, err)

		assert.Less(t, small, medium)
		assert.Less(t, medium, large)
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		_, err := handler.Handle(EstimatePriceQuery{Quantity: 0, Size: SizeMedium})
		assert.Error(t, err)
	})

	t.Run("rejects negative quantity", func(t *testing.T) {
		_, err := handler.Handle(EstimatePriceQuery{Quantity: -5, Size: SizeMedium})
		assert.Error(t, err)
	})

	t.Run("rejects unknown size", func(t *testing.T) {
		_, err := handler.Handle(EstimatePriceQuery{Quantity: 10, Size: "jumbo"})
		assert.Error(t, err)
	})
}
