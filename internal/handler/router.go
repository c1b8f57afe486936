package handler

import (
	"net/http"

	"employee-registry/internal/handler/api"
	"employee-registry/internal/handler/middleware"
	"employee-registry/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, employeeHandler *api.EmployeeHandler, departmentHandler *api.DepartmentHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, employeeHandler, departmentHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, employeeHandler *api.EmployeeHandler, departmentHandler *api.DepartmentHandler) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		employees := apiGroup.Group("/employees")
		{
			addRoutes(employees, []route{
				{Method: http.MethodGet, Path: "", Handler: employeeHandler.List},
				{Method: http.MethodGet, Path: "/active", Handler: employeeHandler.ListActive},
				{Method: http.MethodGet, Path: "/cpf/:cpf", Handler: employeeHandler.GetByCPF},
				{Method: http.MethodGet, Path: "/email/:email", Handler: employeeHandler.GetByEmail},
				{Method: http.MethodGet, Path: "/department/:departmentId", Handler: employeeHandler.ListByDepartment},
				{Method: http.MethodGet, Path: "/:id", Handler: employeeHandler.GetByID},
				{Method: http.MethodPost, Path: "", Handler: employeeHandler.Create},
				{Method: http.MethodPut, Path: "/:id", Handler: employeeHandler.Update},
				{Method: http.MethodPost, Path: "/:id/activate", Handler: employeeHandler.Activate},
				{Method: http.MethodPost, Path: "/:id/deactivate", Handler: employeeHandler.Deactivate},
				{Method: http.MethodDelete, Path: "/:id", Handler: employeeHandler.Delete},
			})
		}

		departments := apiGroup.Group("/departments")
		{
			addRoutes(departments, []route{
				{Method: http.MethodGet, Path: "", Handler: departmentHandler.List},
				{Method: http.MethodGet, Path: "/active", Handler: departmentHandler.ListActive},
				{Method: http.MethodGet, Path: "/name/:name", Handler: departmentHandler.GetByName},
				{Method: http.MethodGet, Path: "/:id", Handler: departmentHandler.GetByID},
				{Method: http.MethodPost, Path: "", Handler: departmentHandler.Create},
				{Method: http.MethodPut, Path: "/:id", Handler: departmentHandler.Update},
				{Method: http.MethodPost, Path: "/:id/activate", Handler: departmentHandler.Activate},
				{Method: http.MethodPost, Path: "/:id/deactivate", Handler: departmentHandler.Deactivate},
				{Method: http.MethodDelete, Path: "/:id", Handler: departmentHandler.Delete},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
