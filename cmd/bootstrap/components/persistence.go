package components

import (
	"employee-registry/internal/infra/db"
	"employee-registry/internal/infra/events"
	"employee-registry/internal/infra/readstore"
	"employee-registry/internal/infra/uow"
	"employee-registry/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewQueryer,
		uow.NewPostgresUoW,
		events.NewSlogDispatcher,
		fx.Annotate(
			readstore.NewEmployeeReadStore,
			fx.As(new(queries.EmployeeReadStore)),
		),
		fx.Annotate(
			readstore.NewDepartmentReadStore,
			fx.As(new(queries.DepartmentReadStore)),
		),
	),
)

// Write repositories are opened lazily by the unit of work per transaction;
// only the read side queries the pool directly.
func NewQueryer(pool *pgxpool.Pool) db.Queryer {
	return pool
}
