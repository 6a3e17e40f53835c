package bootstrap

import (
	"staymarket/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	CacheModule,
	EventsModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
	JobsModule,
)
