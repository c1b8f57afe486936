//go:build unit

package commands_test

import (
	"context"

	"employee-registry/internal/domain/department"
	"employee-registry/internal/domain/employee"
	domain "employee-registry/internal/domain/shared"
	"employee-registry/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// fakeUoW runs the closure against the given Tx without a real transaction.
type fakeUoW struct {
	tx       shared.Tx
	beginErr error
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if u.beginErr != nil {
		return u.beginErr
	}
	return fn(ctx, u.tx)
}

type fakeTx struct {
	employees   shared.EmployeeRepository
	departments shared.DepartmentRepository
}

func (t *fakeTx) Employees() shared.EmployeeRepository     { return t.employees }
func (t *fakeTx) Departments() shared.DepartmentRepository { return t.departments }

type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*employee.Employee, error) {
	args := m.Called(ctx, id)
	emp, _ := args.Get(0).(*employee.Employee)
	return emp, args.Error(1)
}

func (m *MockEmployeeRepository) FindByCPF(ctx context.Context, cpf employee.CPF) (*employee.Employee, error) {
	args := m.Called(ctx, cpf)
	emp, _ := args.Get(0).(*employee.Employee)
	return emp, args.Error(1)
}

func (m *MockEmployeeRepository) FindByEmail(ctx context.Context, email employee.Email) (*employee.Employee, error) {
	args := m.Called(ctx, email)
	emp, _ := args.Get(0).(*employee.Employee)
	return emp, args.Error(1)
}

func (m *MockEmployeeRepository) Create(ctx context.Context, emp *employee.Employee) error {
	args := m.Called(ctx, emp)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Update(ctx context.Context, emp *employee.Employee) error {
	args := m.Called(ctx, emp)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockDepartmentRepository struct {
	mock.Mock
}

func (m *MockDepartmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*department.Department, error) {
	args := m.Called(ctx, id)
	dept, _ := args.Get(0).(*department.Department)
	return dept, args.Error(1)
}

func (m *MockDepartmentRepository) FindByName(ctx context.Context, name string) (*department.Department, error) {
	args := m.Called(ctx, name)
	dept, _ := args.Get(0).(*department.Department)
	return dept, args.Error(1)
}

func (m *MockDepartmentRepository) Create(ctx context.Context, dept *department.Department) error {
	args := m.Called(ctx, dept)
	return args.Error(0)
}

func (m *MockDepartmentRepository) Update(ctx context.Context, dept *department.Department) error {
	args := m.Called(ctx, dept)
	return args.Error(0)
}

func (m *MockDepartmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type recordingDispatcher struct {
	dispatched [][]domain.DomainEvent
}

func (d *recordingDispatcher) Dispatch(_ context.Context, events []domain.DomainEvent) {
	d.dispatched = append(d.dispatched, events)
}
