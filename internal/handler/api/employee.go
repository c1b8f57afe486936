package api

import (
	"context"
	"net/http"

	reqdto "employee-registry/internal/handler/dto/request"
	resdto "employee-registry/internal/handler/dto/response"
	"employee-registry/internal/usecase/commands"
	"employee-registry/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EmployeeHandler struct {
	commands commands.EmployeeCommands
	queries  queries.EmployeeQueries
}

func NewEmployeeHandler(cmd commands.EmployeeCommands, qry queries.EmployeeQueries) *EmployeeHandler {
	return &EmployeeHandler{
		commands: cmd,
		queries:  qry,
	}
}

func (h *EmployeeHandler) List(c *gin.Context) {
	views, err := h.queries.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEmployeeViews(views))
}

func (h *EmployeeHandler) ListActive(c *gin.Context) {
	views, err := h.queries.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEmployeeViews(views))
}

func (h *EmployeeHandler) ListByDepartment(c *gin.Context) {
	departmentID, err := uuid.Parse(c.Param("departmentId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid department ID format"})
		return
	}

	views, err := h.queries.ListByDepartment(c.Request.Context(), departmentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEmployeeViews(views))
}

func (h *EmployeeHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID format"})
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEmployeeView(view))
}

func (h *EmployeeHandler) GetByCPF(c *gin.Context) {
	view, err := h.queries.GetByCPF(c.Request.Context(), c.Param("cpf"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEmployeeView(view))
}

func (h *EmployeeHandler) GetByEmail(c *gin.Context) {
	view, err := h.queries.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEmployeeView(view))
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var req reqdto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.commands.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreateEmployeeResponse{ID: result.EmployeeID})
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID format"})
		return
	}

	var req reqdto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.commands.Update(c.Request.Context(), id, req.ToCommand()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EmployeeHandler) Activate(c *gin.Context) {
	h.setActive(c, h.commands.Activate)
}

func (h *EmployeeHandler) Deactivate(c *gin.Context) {
	h.setActive(c, h.commands.Deactivate)
}

func (h *EmployeeHandler) setActive(c *gin.Context, op func(ctx context.Context, id uuid.UUID) error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID format"})
		return
	}

	if err := op(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID format"})
		return
	}

	if err := h.commands.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
