package builder

import (
	"time"

	"employee-registry/internal/domain/employee"

	"github.com/google/uuid"
)

// Scenario defaults shared by the employee domain tests. The CPF is a
// checksum-valid sequence.
type EmployeeBuilder struct {
	now    time.Time
	params employee.NewEmployeeParams
}

func NewEmployeeBuilder() *EmployeeBuilder {
	return &EmployeeBuilder{
		now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		params: employee.NewEmployeeParams{
			FirstName:   "Ana",
			LastName:    "Silva",
			CPF:         "529.982.247-25",
			Email:       "ana@x.com",
			PhoneNumber: "11987654321",
			Address: employee.AddressParams{
				Street:       "Rua A",
				Number:       "10",
				Neighborhood: "Centro",
				City:         "São Paulo",
				State:        "SP",
				ZipCode:      "01000-000",
			},
			BirthDate:    time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
			HireDate:     time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			Salary:       5000,
			Position:     "Analyst",
			DepartmentID: uuid.MustParse("0b2f53d2-6d55-4f2b-a7a9-3d4f5c1f2e10"),
		},
	}
}

func (b *EmployeeBuilder) With(mutate func(*EmployeeBuilder)) *EmployeeBuilder {
	if mutate != nil {
		mutate(b)
	}
	return b
}

func (b *EmployeeBuilder) WithNow(now time.Time) *EmployeeBuilder {
	b.now = now
	return b
}

func (b *EmployeeBuilder) WithFirstName(v string) *EmployeeBuilder {
	b.params.FirstName = v
	return b
}

func (b *EmployeeBuilder) WithLastName(v string) *EmployeeBuilder {
	b.params.LastName = v
	return b
}

func (b *EmployeeBuilder) WithCPF(v string) *EmployeeBuilder {
	b.params.CPF = v
	return b
}

func (b *EmployeeBuilder) WithEmail(v string) *EmployeeBuilder {
	b.params.Email = v
	return b
}

func (b *EmployeeBuilder) WithPhoneNumber(v string) *EmployeeBuilder {
	b.params.PhoneNumber = v
	return b
}

func (b *EmployeeBuilder) WithAddress(p employee.AddressParams) *EmployeeBuilder {
	b.params.Address = p
	return b
}

func (b *EmployeeBuilder) WithBirthDate(v time.Time) *EmployeeBuilder {
	b.params.BirthDate = v
	return b
}

func (b *EmployeeBuilder) WithHireDate(v time.Time) *EmployeeBuilder {
	b.params.HireDate = v
	return b
}

func (b *EmployeeBuilder) WithSalary(v float64) *EmployeeBuilder {
	b.params.Salary = v
	return b
}

func (b *EmployeeBuilder) WithPosition(v string) *EmployeeBuilder {
	b.params.Position = v
	return b
}

func (b *EmployeeBuilder) WithDepartmentID(v uuid.UUID) *EmployeeBuilder {
	b.params.DepartmentID = v
	return b
}

func (b *EmployeeBuilder) Now() time.Time {
	return b.now
}

func (b *EmployeeBuilder) Params() employee.NewEmployeeParams {
	return b.params
}

func (b *EmployeeBuilder) BuildDomain() (*employee.Employee, error) {
	return employee.NewEmployee(b.now, b.params)
}
