package request

import (
	"time"

	"employee-registry/internal/usecase/commands"

	"github.com/google/uuid"
)

// Binding tags gate the input shape; the domain layer still owns semantic
// validation (CPF checksum, state codes, date ordering).
type CreateEmployeeRequest struct {
	FirstName    string    `json:"firstName" binding:"required"`
	LastName     string    `json:"lastName" binding:"required"`
	CPF          string    `json:"cpf" binding:"required"`
	Email        string    `json:"email" binding:"required,email"`
	PhoneNumber  string    `json:"phoneNumber" binding:"required"`
	Street       string    `json:"street" binding:"required"`
	Number       string    `json:"number" binding:"required"`
	Complement   string    `json:"complement"`
	Neighborhood string    `json:"neighborhood" binding:"required"`
	City         string    `json:"city" binding:"required"`
	State        string    `json:"state" binding:"required"`
	ZipCode      string    `json:"zipCode" binding:"required"`
	BirthDate    time.Time `json:"birthDate" binding:"required"`
	HireDate     time.Time `json:"hireDate" binding:"required"`
	Salary       float64   `json:"salary" binding:"required,gt=0"`
	Position     string    `json:"position" binding:"required"`
	DepartmentID uuid.UUID `json:"departmentId" binding:"required"`
}

func (r CreateEmployeeRequest) ToCommand() commands.CreateEmployeeRequest {
	return commands.CreateEmployeeRequest{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		CPF:          r.CPF,
		Email:        r.Email,
		PhoneNumber:  r.PhoneNumber,
		Street:       r.Street,
		Number:       r.Number,
		Complement:   r.Complement,
		Neighborhood: r.Neighborhood,
		City:         r.City,
		State:        r.State,
		ZipCode:      r.ZipCode,
		BirthDate:    r.BirthDate,
		HireDate:     r.HireDate,
		Salary:       r.Salary,
		Position:     r.Position,
		DepartmentID: r.DepartmentID,
	}
}

type UpdateEmployeeRequest struct {
	FirstName    string    `json:"firstName" binding:"required"`
	LastName     string    `json:"lastName" binding:"required"`
	Email        string    `json:"email" binding:"required,email"`
	PhoneNumber  string    `json:"phoneNumber" binding:"required"`
	Street       string    `json:"street" binding:"required"`
	Number       string    `json:"number" binding:"required"`
	Complement   string    `json:"complement"`
	Neighborhood string    `json:"neighborhood" binding:"required"`
	City         string    `json:"city" binding:"required"`
	State        string    `json:"state" binding:"required"`
	ZipCode      string    `json:"zipCode" binding:"required"`
	Salary       float64   `json:"salary" binding:"required,gt=0"`
	Position     string    `json:"position" binding:"required"`
	DepartmentID uuid.UUID `json:"departmentId" binding:"required"`
}

func (r UpdateEmployeeRequest) ToCommand() commands.UpdateEmployeeRequest {
	return commands.UpdateEmployeeRequest{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		PhoneNumber:  r.PhoneNumber,
		Street:       r.Street,
		Number:       r.Number,
		Complement:   r.Complement,
		Neighborhood: r.Neighborhood,
		City:         r.City,
		State:        r.State,
		ZipCode:      r.ZipCode,
		Salary:       r.Salary,
		Position:     r.Position,
		DepartmentID: r.DepartmentID,
	}
}
