package components

import (
	"employee-registry/internal/pkg/clock"
	"employee-registry/internal/usecase/commands"
	"employee-registry/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		commands.NewEmployeeCommands,
		commands.NewDepartmentCommands,
		queries.NewEmployeeQueries,
		queries.NewDepartmentQueries,
	),
)
