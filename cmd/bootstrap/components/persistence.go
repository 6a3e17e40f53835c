package components

import (
	"staymarket/internal/infra/readstore"
	"staymarket/internal/infra/repository"
	"staymarket/internal/pkg/config"
	"staymarket/internal/pkg/settings"
	"staymarket/internal/usecase/commands"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	repositoryModule,
	settingsModule,
)

// Read-side stores already return their query-facing interfaces.
var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		readstore.NewBookingReadStore,
		readstore.NewPropertyReadStore,
		readstore.NewPricingRuleReadStore,
		readstore.NewSuggestionReadStore,
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repository.NewPropertyRepository,
			fx.As(new(commands.PropertyRepository)),
		),
		fx.Annotate(
			repository.NewPricingRuleRepository,
			fx.As(new(commands.PricingRuleRepository)),
		),
		fx.Annotate(
			repository.NewSuggestionRepository,
			fx.As(new(commands.SuggestionRepository)),
		),
	),
)

var settingsModule = fx.Module("persistence/settings",
	fx.Provide(
		readstore.NewSettingsLoader,
		func(loader settings.Loader, cfg config.Config) settings.Store {
			return settings.NewStore(loader, cfg.Cache.SettingsSize, cfg.Cache.SettingsTTL)
		},
	),
)
