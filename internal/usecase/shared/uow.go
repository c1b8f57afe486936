package shared

import (
	"context"

	"employee-registry/internal/domain/department"
	"employee-registry/internal/domain/employee"

	"github.com/google/uuid"
)

// UnitOfWork runs fn inside a single transaction: every repository write made
// through the Tx commits atomically or not at all. Uniqueness of CPF, email
// and department name is enforced by the storage layer at commit time.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Employees() EmployeeRepository
	Departments() DepartmentRepository
}

// Write-side repositories return reconstructed aggregates. Lookup misses are
// absent values ((nil, nil)), not errors; callers must check before use.
type EmployeeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*employee.Employee, error)
	FindByCPF(ctx context.Context, cpf employee.CPF) (*employee.Employee, error)
	FindByEmail(ctx context.Context, email employee.Email) (*employee.Employee, error)
	Create(ctx context.Context, emp *employee.Employee) error
	Update(ctx context.Context, emp *employee.Employee) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type DepartmentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*department.Department, error)
	FindByName(ctx context.Context, name string) (*department.Department, error)
	Create(ctx context.Context, dept *department.Department) error
	Update(ctx context.Context, dept *department.Department) error
	Delete(ctx context.Context, id uuid.UUID) error
}
