package cart

import (
	"gorm.io/gorm"

	"github.com/kemasindo/storefront/internal/cart/domain"
	"github.com/kemasindo/storefront/internal/cart/repository"
	"github.com/kemasindo/storefront/internal/cart/usecase/command"
	catalogrepo "github.com/kemasindo/storefront/internal/catalog/repository"
)

// ProvideCartRepository provides the traced cart repository
func ProvideCartRepository(db *gorm.DB) domain.CartRepository {
	return repository.NewTracingCartRepository(db)
}

// ProvideProductFinder provides the read-only product view the cart
// needs; both services share the storefront database.
func ProvideProductFinder(db *gorm.DB) command.ProductFinder {
	return catalogrepo.NewTracingCatalogRepository(db)
}
