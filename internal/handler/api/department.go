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

type DepartmentHandler struct {
	commands commands.DepartmentCommands
	queries  queries.DepartmentQueries
}

func NewDepartmentHandler(cmd commands.DepartmentCommands, qry queries.DepartmentQueries) *DepartmentHandler {
	return &DepartmentHandler{
		commands: cmd,
		queries:  qry,
	}
}

func (h *DepartmentHandler) List(c *gin.Context) {
	views, err := h.queries.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDepartmentViews(views))
}

func (h *DepartmentHandler) ListActive(c *gin.Context) {
	views, err := h.queries.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDepartmentViews(views))
}

func (h *DepartmentHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid department ID format"})
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDepartmentView(view))
}

func (h *DepartmentHandler) GetByName(c *gin.Context) {
	view, err := h.queries.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDepartmentView(view))
}

func (h *DepartmentHandler) Create(c *gin.Context) {
	var req reqdto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.commands.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreateDepartmentResponse{ID: result.DepartmentID})
}

func (h *DepartmentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid department ID format"})
		return
	}

	var req reqdto.UpdateDepartmentRequest
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

func (h *DepartmentHandler) Activate(c *gin.Context) {
	h.setActive(c, h.commands.Activate)
}

func (h *DepartmentHandler) Deactivate(c *gin.Context) {
	h.setActive(c, h.commands.Deactivate)
}

func (h *DepartmentHandler) setActive(c *gin.Context, op func(ctx context.Context, id uuid.UUID) error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid department ID format"})
		return
	}

	if err := op(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DepartmentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid department ID format"})
		return
	}

	if err := h.commands.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
