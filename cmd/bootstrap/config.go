package bootstrap

import (
	"printcanvas/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.CreditsConfig { return cfg.Credits },
	),
)
