package queriesmock

import (
	"context"

	"employee-registry/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockEmployeeQueries struct {
	mock.Mock
}

func (m *MockEmployeeQueries) GetByID(ctx context.Context, id uuid.UUID) (*queries.EmployeeView, error) {
	args := m.Called(ctx, id)
	view, _ := args.Get(0).(*queries.EmployeeView)
	return view, args.Error(1)
}

func (m *MockEmployeeQueries) GetByCPF(ctx context.Context, cpf string) (*queries.EmployeeView, error) {
	args := m.Called(ctx, cpf)
	view, _ := args.Get(0).(*queries.EmployeeView)
	return view, args.Error(1)
}

func (m *MockEmployeeQueries) GetByEmail(ctx context.Context, email string) (*queries.EmployeeView, error) {
	args := m.Called(ctx, email)
	view, _ := args.Get(0).(*queries.EmployeeView)
	return view, args.Error(1)
}

func (m *MockEmployeeQueries) ListAll(ctx context.Context) ([]*queries.EmployeeView, error) {
	args := m.Called(ctx)
	views, _ := args.Get(0).([]*queries.EmployeeView)
	return views, args.Error(1)
}

func (m *MockEmployeeQueries) ListActive(ctx context.Context) ([]*queries.EmployeeView, error) {
	args := m.Called(ctx)
	views, _ := args.Get(0).([]*queries.EmployeeView)
	return views, args.Error(1)
}

func (m *MockEmployeeQueries) ListByDepartment(ctx context.Context, departmentID uuid.UUID) ([]*queries.EmployeeView, error) {
	args := m.Called(ctx, departmentID)
	views, _ := args.Get(0).([]*queries.EmployeeView)
	return views, args.Error(1)
}
