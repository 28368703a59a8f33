//go:build wireinject
// +build wireinject

package cart

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/kemasindo/storefront/internal/cart/delivery/http"
	"github.com/kemasindo/storefront/internal/cart/usecase/command"
	"github.com/kemasindo/storefront/internal/cart/usecase/query"
	"github.com/kemasindo/storefront/internal/identity"
)

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideCartRepository,
	ProvideProductFinder,
)

var UsecaseSet = wire.NewSet(
	command.NewAddToCartHandler,
	command.NewRemoveItemHandler,
	command.NewSetQuantityHandler,
	query.NewGetCartHandler,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, gate identity.Gate, events command.EventPublisher) (*http.CartHandler, error) {
	wire.Build(
		RepositorySet,
		UsecaseSet,
		http.NewCartHandler,
	)
	return nil, nil
}
