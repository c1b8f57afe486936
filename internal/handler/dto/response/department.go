package response

import (
	"time"

	"employee-registry/internal/usecase/queries"

	"github.com/google/uuid"
)

type DepartmentResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	IsActive    bool       `json:"isActive"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

func FromDepartmentView(view *queries.DepartmentView) *DepartmentResponse {
	return &DepartmentResponse{
		ID:          view.ID,
		Name:        view.Name,
		Description: view.Description,
		IsActive:    view.IsActive,
		CreatedAt:   view.CreatedAt,
		UpdatedAt:   view.UpdatedAt,
	}
}

func FromDepartmentViews(views []*queries.DepartmentView) []*DepartmentResponse {
	out := make([]*DepartmentResponse, len(views))
	for i, view := range views {
		out[i] = FromDepartmentView(view)
	}
	return out
}

type CreateDepartmentResponse struct {
	ID uuid.UUID `json:"id"`
}
