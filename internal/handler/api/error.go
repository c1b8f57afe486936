package api

import (
	"errors"
	"net/http"

	"employee-registry/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// respondError maps usecase sentinels onto the HTTP boundary: validation 400,
// missing aggregates 404, uniqueness conflicts 409, everything else 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrEmployeeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
	case errors.Is(err, errs.ErrDepartmentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Department not found"})
	case errors.Is(err, errs.ErrCPFAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "CPF already registered"})
	case errors.Is(err, errs.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
	case errors.Is(err, errs.ErrDepartmentNameTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "Department name already in use"})
	case errors.Is(err, errs.ErrDomainValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Domain validation failed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
