package components

import (
	"printcanvas/internal/infra/readstore"
	"printcanvas/internal/infra/repository"
	"printcanvas/internal/infra/uow"
	"printcanvas/internal/usecase/queries"
	"printcanvas/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		uow.NewPostgresUoW,
		// Merchant auth reads bypass the unit of work; logins never join a
		// storefront transaction
		fx.Annotate(
			repository.NewMerchantRepository,
			fx.As(new(shared.MerchantRepository)),
		),
		fx.Annotate(
			readstore.NewCustomerReadStore,
			fx.As(new(queries.CustomerViewRepo)),
		),
		fx.Annotate(
			readstore.NewDesignReadStore,
			fx.As(new(queries.DesignViewRepo)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderViewRepo)),
		),
		fx.Annotate(
			readstore.NewCouponReadStore,
			fx.As(new(queries.CouponViewRepo)),
		),
	),
)
