package components

import (
	"printcanvas/internal/pkg/clock"
	"printcanvas/internal/usecase/commands"
	"printcanvas/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewIdentityCommands,
		commands.NewCreditCommands,
		commands.NewCouponCommands,
		commands.NewGenerationCommands,
		commands.NewOrderCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCustomerQueries,
		queries.NewCouponQueries,
		queries.NewDesignQueries,
		queries.NewOrderQueries,
	),
)
