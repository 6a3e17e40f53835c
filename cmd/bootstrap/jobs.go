package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"staymarket/internal/pkg/config"
	"staymarket/internal/usecase/commands"

	"go.uber.org/fx"
)

var JobsModule = fx.Module("jobs",
	fx.Invoke(StartSuggestionSweeper),
)

// StartSuggestionSweeper periodically expires pending price suggestions whose
// window has closed.
func StartSuggestionSweeper(lc fx.Lifecycle, cfg config.Config, suggestionCommands commands.SuggestionCommands, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(cfg.Jobs.SuggestionSweepInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						expired, err := suggestionCommands.ExpireDueSuggestions(ctx)
						if err != nil {
							logger.Warn("suggestion sweep failed", "error", err)
							continue
						}
						if expired > 0 {
							logger.Info("expired stale price suggestions", "count", expired)
						}
					}
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}
