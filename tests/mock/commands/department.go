package commandsmock

import (
	"context"

	"employee-registry/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockDepartmentCommands struct {
	mock.Mock
}

func (m *MockDepartmentCommands) Create(ctx context.Context, req commands.CreateDepartmentRequest) (*commands.CreateDepartmentResult, error) {
	args := m.Called(ctx, req)
	result, _ := args.Get(0).(*commands.CreateDepartmentResult)
	return result, args.Error(1)
}

func (m *MockDepartmentCommands) Update(ctx context.Context, id uuid.UUID, req commands.UpdateDepartmentRequest) error {
	args := m.Called(ctx, id, req)
	return args.Error(0)
}

func (m *MockDepartmentCommands) Activate(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDepartmentCommands) Deactivate(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDepartmentCommands) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
