package request

import (
	"employee-registry/internal/usecase/commands"
)

type CreateDepartmentRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
}

func (r CreateDepartmentRequest) ToCommand() commands.CreateDepartmentRequest {
	return commands.CreateDepartmentRequest{
		Name:        r.Name,
		Description: r.Description,
	}
}

type UpdateDepartmentRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
}

func (r UpdateDepartmentRequest) ToCommand() commands.UpdateDepartmentRequest {
	return commands.UpdateDepartmentRequest{
		Name:        r.Name,
		Description: r.Description,
	}
}
