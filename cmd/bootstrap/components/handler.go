package components

import (
	"employee-registry/internal/handler"
	"employee-registry/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewEmployeeHandler,
		api.NewDepartmentHandler,
	),
	fx.Invoke(handler.NewRouter),
)
