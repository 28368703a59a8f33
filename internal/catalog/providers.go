package catalog

import (
	"gorm.io/gorm"

	"github.com/kemasindo/storefront/internal/catalog/domain"
	"github.com/kemasindo/storefront/internal/catalog/repository"
)

// ProvideCatalogRepository provides the traced catalog repository
func ProvideCatalogRepository(db *gorm.DB) domain.CatalogRepository {
	return repository.NewTracingCatalogRepository(db)
}
