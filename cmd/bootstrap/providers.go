package bootstrap

import (
	"context"

	"printcanvas/internal/infra/imagegen"
	"printcanvas/internal/infra/inflight"
	"printcanvas/internal/infra/printify"
	"printcanvas/internal/infra/storage"
	"printcanvas/internal/pkg/config"
	"printcanvas/internal/usecase/commands"

	"go.uber.org/fx"
)

// External collaborators of the generation and fulfillment flows: the image
// provider, the design bucket, the print provider, and the per-customer
// in-flight guard.
var ProvidersModule = fx.Module("providers",
	fx.Provide(
		fx.Annotate(
			NewDesignStore,
			fx.As(new(commands.DesignStore)),
		),
		fx.Annotate(
			NewImageGenerator,
			fx.As(new(commands.ImageGenerator)),
		),
		fx.Annotate(
			NewPrintProvider,
			fx.As(new(commands.PrintProvider)),
		),
		fx.Annotate(
			inflight.NewRedisGuard,
			fx.As(new(commands.InflightGuard)),
		),
	),
)

func NewDesignStore(cfg config.Config) (*storage.S3DesignStore, error) {
	return storage.NewS3DesignStore(context.Background(), cfg.Storage)
}

func NewImageGenerator(cfg config.Config) *imagegen.Client {
	return imagegen.NewClient(cfg.ImageGen)
}

func NewPrintProvider(cfg config.Config) *printify.Client {
	return printify.NewClient(cfg.Printify)
}
