package query

import (
	"fmt"
	"math"
)

// Box sizes offered by the instant-quote calculator
const (
	SizeSmall  = "small"
	SizeMedium = "medium"
	SizeLarge  = "large"
)

// BaseUnitPrice is the per-unit quote base in the smallest currency
// unit (IDR). It is a quoting constant, independent of stored product
// prices.
const BaseUnitPrice = 1000

var sizeMultipliers = map[string]float64{
	SizeSmall:  0.8,
	SizeMedium: 1.0,
	SizeLarge:  1.3,
}

// EstimatePriceQuery represents an instant-quote request
type EstimatePriceQuery struct {
	Quantity int
	Size     string
}

// EstimatePriceHandler computes instant quotes for custom orders
type EstimatePriceHandler struct{}

// NewEstimatePriceHandler creates a new estimate price handler
func NewEstimatePriceHandler() *EstimatePriceHandler {
	return &EstimatePriceHandler{}
}

// Handle computes round(BaseUnitPrice * quantity * sizeMultiplier).
// The quote is monotone in quantity for a fixed size and in the size
// multiplier for a fixed quantity.
func (h *EstimatePriceHandler) Handle(query EstimatePriceQuery) (int64, error) {
	if query.Quantity <= 0 {
		return 0, fmt.Errorf("quantity must be a positive integer")
	}

	multiplier, ok := sizeMultipliers[query.Size]
	if !ok {
		return 0, fmt.Errorf("unknown size: %q", query.Size)
	}

	amount := math.Round(BaseUnitPrice * float64(query.Quantity) * multiplier)
	return int64(amount), nil
}
