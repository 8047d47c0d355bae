package bootstrap

import (
	"printcanvas/internal/pkg/catalog"
	"printcanvas/internal/pkg/config"

	"go.uber.org/fx"
)

var CatalogModule = fx.Module("catalog",
	fx.Provide(
		NewCatalog,
	),
)

func NewCatalog(cfg config.Config) (*catalog.Catalog, error) {
	return catalog.Load(cfg.Catalog.Path)
}
