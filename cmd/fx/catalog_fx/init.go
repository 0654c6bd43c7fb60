package catalog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"cupid/internal/repositories"
	"cupid/internal/services"
)

var Module = fx.Provide(
	provideCatalogRepo, services.NewCatalogService,
)

func provideCatalogRepo(db *gorm.DB) repositories.CatalogRepositoryInterface {
	return repositories.NewCatalogRepository(db)
}
