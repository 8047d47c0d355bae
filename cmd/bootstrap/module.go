package bootstrap

import (
	"printcanvas/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	RedisModule,
	JWTModule,
	CatalogModule,
	ProvidersModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
