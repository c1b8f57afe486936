package queriesmock

import (
	"context"

	"employee-registry/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockDepartmentQueries struct {
	mock.Mock
}

func (m *MockDepartmentQueries) GetByID(ctx context.Context, id uuid.UUID) (*queries.DepartmentView, error) {
	args := m.Called(ctx, id)
	view, _ := args.Get(0).(*queries.DepartmentView)
	return view, args.Error(1)
}

func (m *MockDepartmentQueries) GetByName(ctx context.Context, name string) (*queries.DepartmentView, error) {
	args := m.Called(ctx, name)
	view, _ := args.Get(0).(*queries.DepartmentView)
	return view, args.Error(1)
}

func (m *MockDepartmentQueries) ListAll(ctx context.Context) ([]*queries.DepartmentView, error) {
	args := m.Called(ctx)
	views, _ := args.Get(0).([]*queries.DepartmentView)
	return views, args.Error(1)
}

func (m *MockDepartmentQueries) ListActive(ctx context.Context) ([]*queries.DepartmentView, error) {
	args := m.Called(ctx)
	views, _ := args.Get(0).([]*queries.DepartmentView)
	return views, args.Error(1)
}
