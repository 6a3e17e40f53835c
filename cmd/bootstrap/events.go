package bootstrap

import (
	"context"
	"log/slog"

	"staymarket/internal/infra/events"
	"staymarket/internal/pkg/config"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewPublisher,
	),
)

func NewPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) events.Publisher {
	if !cfg.Kafka.Enabled {
		logger.Info("event publishing disabled, using nop publisher")
		return events.NopPublisher{}
	}

	publisher := events.NewKafkaPublisher(cfg.Kafka, logger)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	return publisher
}
