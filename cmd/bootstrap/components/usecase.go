package components

import (
	"staymarket/internal/domain/pricing"
	"staymarket/internal/infra/cache"
	"staymarket/internal/pkg/clock"
	"staymarket/internal/pkg/config"
	"staymarket/internal/usecase/commands"
	"staymarket/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	pricing.NewEngine,
	func(cfg config.Config) config.CacheConfig {
		return cfg.Cache
	},
	fx.Annotate(
		func(svc *cache.Service) *cache.Service { return svc },
		fx.As(new(commands.CacheInvalidator)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewPropertyCommands,
		commands.NewPricingRuleCommands,
		commands.NewSuggestionCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewAvailabilityQueries,
		queries.NewPropertyQueries,
		queries.NewPricingQueries,
		queries.NewSuggestionQueries,
	),
)
