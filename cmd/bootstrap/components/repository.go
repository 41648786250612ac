package components

import (
	"expert-booking/internal/infra"
	"expert-booking/internal/infra/repository"
	"expert-booking/internal/usecase/commands"
	"expert-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		repository.NewClientRepository,
		repository.NewProviderRepository,
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingLedger)),
			fx.As(new(queries.BookingReadRepo)),
			fx.As(new(queries.ClaimReader)),
		),
		func(r *repository.ProviderRepository) commands.ProviderReader { return r },
		func(r *repository.ProviderRepository) queries.ProviderDirectory { return r },
	),
)

func NewDBTX(pool *pgxpool.Pool) infra.DBTX {
	return pool
}
