package bootstrap

import (
	"expert-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	FanoutModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
