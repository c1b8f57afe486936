package response

import (
	"time"

	"employee-registry/internal/usecase/queries"

	"github.com/google/uuid"
)

type EmployeeResponse struct {
	ID                   uuid.UUID       `json:"id"`
	FirstName            string          `json:"firstName"`
	LastName             string          `json:"lastName"`
	FullName             string          `json:"fullName"`
	CPF                  string          `json:"cpf"`
	CPFFormatted         string          `json:"cpfFormatted"`
	Email                string          `json:"email"`
	PhoneNumber          string          `json:"phoneNumber"`
	PhoneNumberFormatted string          `json:"phoneNumberFormatted"`
	Address              AddressResponse `json:"address"`
	BirthDate            time.Time       `json:"birthDate"`
	HireDate             time.Time       `json:"hireDate"`
	Age                  int             `json:"age"`
	YearsOfService       int             `json:"yearsOfService"`
	Salary               float64         `json:"salary"`
	Position             string          `json:"position"`
	DepartmentID         uuid.UUID       `json:"departmentId"`
	DepartmentName       string          `json:"departmentName"`
	IsActive             bool            `json:"isActive"`
	CreatedAt            time.Time       `json:"createdAt"`
	UpdatedAt            *time.Time      `json:"updatedAt,omitempty"`
}

type AddressResponse struct {
	Street       string  `json:"street"`
	Number       string  `json:"number"`
	Complement   *string `json:"complement,omitempty"`
	Neighborhood string  `json:"neighborhood"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	ZipCode      string  `json:"zipCode"`
	Country      string  `json:"country"`
}

func FromEmployeeView(view *queries.EmployeeView) *EmployeeResponse {
	return &EmployeeResponse{
		ID:                   view.ID,
		FirstName:            view.FirstName,
		LastName:             view.LastName,
		FullName:             view.FullName,
		CPF:                  view.CPF,
		CPFFormatted:         view.CPFFormatted,
		Email:                view.Email,
		PhoneNumber:          view.PhoneNumber,
		PhoneNumberFormatted: view.PhoneNumberFormatted,
		Address: AddressResponse{
			Street:       view.Street,
			Number:       view.Number,
			Complement:   view.Complement,
			Neighborhood: view.Neighborhood,
			City:         view.City,
			State:        view.State,
			ZipCode:      view.ZipCode,
			Country:      view.Country,
		},
		BirthDate:      view.BirthDate,
		HireDate:       view.HireDate,
		Age:            view.Age,
		YearsOfService: view.YearsOfService,
		Salary:         view.Salary,
		Position:       view.Position,
		DepartmentID:   view.DepartmentID,
		DepartmentName: view.DepartmentName,
		IsActive:       view.IsActive,
		CreatedAt:      view.CreatedAt,
		UpdatedAt:      view.UpdatedAt,
	}
}

func FromEmployeeViews(views []*queries.EmployeeView) []*EmployeeResponse {
	out := make([]*EmployeeResponse, len(views))
	for i, view := range views {
		out[i] = FromEmployeeView(view)
	}
	return out
}

type CreateEmployeeResponse struct {
	ID uuid.UUID `json:"id"`
}
