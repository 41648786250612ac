package components

import (
	"expert-booking/internal/infra/repository"
	"expert-booking/internal/pkg/clock"
	"expert-booking/internal/pkg/jwt"
	"expert-booking/internal/usecase"
	"expert-booking/internal/usecase/commands"
	"expert-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	// Identity resolution walks the account stores in order: clients (which
	// includes admins) first, then providers.
	func(tokens *jwt.Service, clients *repository.ClientRepository, providers *repository.ProviderRepository) usecase.IdentityResolver {
		return usecase.NewIdentityResolver(tokens, clients, providers)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		// Login consults the stores in the same order as identity resolution.
		func(tokens *jwt.Service, clients *repository.ClientRepository, providers *repository.ProviderRepository) commands.AuthCommands {
			return commands.NewAuthCommands(tokens, clients, providers)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewBookingQueries,
	),
)
