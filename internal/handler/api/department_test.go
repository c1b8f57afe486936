//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"employee-registry/internal/handler/api"
	resdto "employee-registry/internal/handler/dto/response"
	"employee-registry/internal/pkg/errs"
	"employee-registry/internal/usecase/commands"
	"employee-registry/internal/usecase/queries"
	"employee-registry/tests/common/httptest"
	commandsmock "employee-registry/tests/mock/commands"
	queriesmock "employee-registry/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type DepartmentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCommands *commandsmock.MockDepartmentCommands
	mockQueries  *queriesmock.MockDepartmentQueries
}

func (s *DepartmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCommands = new(commandsmock.MockDepartmentCommands)
	s.mockQueries = new(queriesmock.MockDepartmentQueries)
	handler := api.NewDepartmentHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/departments", handler.List)
	s.router.GET("/departments/active", handler.ListActive)
	s.router.GET("/departments/name/:name", handler.GetByName)
	s.router.GET("/departments/:id", handler.GetByID)
	s.router.POST("/departments", handler.Create)
	s.router.PUT("/departments/:id", handler.Update)
	s.router.POST("/departments/:id/deactivate", handler.Deactivate)
	s.router.DELETE("/departments/:id", handler.Delete)
}

func TestDepartmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(DepartmentHandlerTestSuite))
}

func departmentViewFixture() *queries.DepartmentView {
	return &queries.DepartmentView{
		ID:          uuid.New(),
		Name:        "Recursos Humanos",
		Description: "Gestão de pessoas",
		IsActive:    true,
		CreatedAt:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (s *DepartmentHandlerTestSuite) TestList() {
	s.SetupTest()
	s.mockQueries.On("ListAll", mock.Anything).
		Return([]*queries.DepartmentView{departmentViewFixture()}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/departments", nil)

	var resp []*resdto.DepartmentResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
	s.Len(resp, 1)
	s.Equal("Recursos Humanos", resp[0].Name)
}

func (s *DepartmentHandlerTestSuite) TestGetByID() {
	s.Run("returns the department", func() {
		s.SetupTest()
		view := departmentViewFixture()
		s.mockQueries.On("GetByID", mock.Anything, view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/departments/"+view.ID.String(), nil)

		var resp resdto.DepartmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(view.ID, resp.ID)
	})

	s.Run("unknown id is 404", func() {
		s.SetupTest()
		id := uuid.New()
		s.mockQueries.On("GetByID", mock.Anything, id).Return(nil, errs.ErrDepartmentNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/departments/"+id.String(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Department not found")
	})
}

func (s *DepartmentHandlerTestSuite) TestGetByName() {
	s.SetupTest()
	view := departmentViewFixture()
	s.mockQueries.On("GetByName", mock.Anything, "Recursos Humanos").Return(view, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/departments/name/Recursos%20Humanos", nil)

	var resp resdto.DepartmentResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
	s.Equal(view.ID, resp.ID)
}

func (s *DepartmentHandlerTestSuite) TestCreate() {
	s.Run("returns 201 with the new id", func() {
		s.SetupTest()
		newID := uuid.New()
		s.mockCommands.On("Create", mock.Anything, commands.CreateDepartmentRequest{
			Name:        "Financeiro",
			Description: "Gestão financeira",
		}).Return(&commands.CreateDepartmentResult{DepartmentID: newID}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/departments",
			map[string]any{"name": "Financeiro", "description": "Gestão financeira"})

		var resp resdto.CreateDepartmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal(newID, resp.ID)
	})

	s.Run("duplicate name is 409", func() {
		s.SetupTest()
		s.mockCommands.On("Create", mock.Anything, mock.Anything).Return(nil, errs.ErrDepartmentNameTaken)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/departments",
			map[string]any{"name": "Financeiro", "description": "x"})
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("missing name is 400 before the command runs", func() {
		s.SetupTest()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/departments",
			map[string]any{"description": "x"})
		s.Equal(http.StatusBadRequest, rec.Code)
		s.mockCommands.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
	})
}

func (s *DepartmentHandlerTestSuite) TestDeactivate() {
	s.SetupTest()
	id := uuid.New()
	s.mockCommands.On("Deactivate", mock.Anything, id).Return(nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/departments/"+id.String()+"/deactivate", nil)
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *DepartmentHandlerTestSuite) TestDelete() {
	s.SetupTest()
	id := uuid.New()
	s.mockCommands.On("Delete", mock.Anything, id).Return(errs.ErrDepartmentNotFound)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/departments/"+id.String(), nil)
	s.Equal(http.StatusNotFound, rec.Code)
}
