package commandsmock

import (
	"context"

	"employee-registry/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockEmployeeCommands struct {
	mock.Mock
}

func (m *MockEmployeeCommands) Create(ctx context.Context, req commands.CreateEmployeeRequest) (*commands.CreateEmployeeResult, error) {
	args := m.Called(ctx, req)
	result, _ := args.Get(0).(*commands.CreateEmployeeResult)
	return result, args.Error(1)
}

func (m *MockEmployeeCommands) Update(ctx context.Context, id uuid.UUID, req commands.UpdateEmployeeRequest) error {
	args := m.Called(ctx, id, req)
	return args.Error(0)
}

func (m *MockEmployeeCommands) Activate(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEmployeeCommands) Deactivate(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEmployeeCommands) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
