package components

import (
	"staymarket/internal/handler"
	"staymarket/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewPropertyHandler,
		api.NewPricingRuleHandler,
		api.NewSuggestionHandler,
	),
	fx.Invoke(handler.NewRouter),
)
