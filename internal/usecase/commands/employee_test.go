//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"employee-registry/internal/domain/employee"
	"employee-registry/internal/pkg/clock"
	"employee-registry/internal/pkg/errs"
	"employee-registry/internal/usecase/commands"
	"employee-registry/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func validCreateRequest(departmentID uuid.UUID) commands.CreateEmployeeRequest {
	return commands.CreateEmployeeRequest{
		FirstName:    "Ana",
		LastName:     "Silva",
		CPF:          "529.982.247-25",
		Email:        "ana@x.com",
		PhoneNumber:  "11987654321",
		Street:       "Rua A",
		Number:       "10",
		Neighborhood: "Centro",
		City:         "São Paulo",
		State:        "SP",
		ZipCode:      "01000-000",
		BirthDate:    time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		HireDate:     time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		Salary:       5000,
		Position:     "Analyst",
		DepartmentID: departmentID,
	}
}

func newEmployeeCommandsFixture() (commands.EmployeeCommands, *MockEmployeeRepository, *MockDepartmentRepository, *recordingDispatcher) {
	employees := new(MockEmployeeRepository)
	departments := new(MockDepartmentRepository)
	dispatcher := &recordingDispatcher{}
	uow := &fakeUoW{tx: &fakeTx{employees: employees, departments: departments}}
	uc := commands.NewEmployeeCommands(uow, clock.NewMockClock(testNow), dispatcher)
	return uc, employees, departments, dispatcher
}

func TestEmployeeCommands_Create(t *testing.T) {
	t.Run("creates and dispatches the created event after commit", func(t *testing.T) {
		uc, employees, departments, dispatcher := newEmployeeCommandsFixture()
		req := validCreateRequest(uuid.New())

		dept, err := builder.NewDepartmentBuilder().BuildDomain()
		require.NoError(t, err)
		departments.On("FindByID", mock.Anything, req.DepartmentID).Return(dept, nil)
		employees.On("FindByCPF", mock.Anything, mock.Anything).Return(nil, nil)
		employees.On("FindByEmail", mock.Anything, mock.Anything).Return(nil, nil)
		employees.On("Create", mock.Anything, mock.Anything).Return(nil)

		result, err := uc.Create(context.Background(), req)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.NotEqual(t, uuid.Nil, result.EmployeeID)

		require.Len(t, dispatcher.dispatched, 1)
		require.Len(t, dispatcher.dispatched[0], 1)
		created, ok := dispatcher.dispatched[0][0].(employee.EmployeeCreated)
		require.True(t, ok)
		assert.Equal(t, "52998224725", created.CPF)
		assert.Equal(t, result.EmployeeID, created.EmployeeID)

		employees.AssertExpectations(t)
		departments.AssertExpectations(t)
	})

	t.Run("domain validation failure never opens a transaction", func(t *testing.T) {
		uc, employees, departments, dispatcher := newEmployeeCommandsFixture()
		req := validCreateRequest(uuid.New())
		req.CPF = "11111111111"

		result, err := uc.Create(context.Background(), req)
		require.Nil(t, result)
		require.ErrorIs(t, err, employee.ErrInvalidCPF)
		require.ErrorIs(t, err, errs.ErrDomainValidation)

		assert.Empty(t, dispatcher.dispatched)
		employees.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		departments.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("unknown department is rejected", func(t *testing.T) {
		uc, employees, departments, dispatcher := newEmployeeCommandsFixture()
		req := validCreateRequest(uuid.New())

		departments.On("FindByID", mock.Anything, req.DepartmentID).Return(nil, nil)

		result, err := uc.Create(context.Background(), req)
		require.Nil(t, result)
		require.ErrorIs(t, err, errs.ErrDepartmentNotFound)

		assert.Empty(t, dispatcher.dispatched)
		employees.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate cpf is a conflict and nothing is dispatched", func(t *testing.T) {
		uc, employees, departments, dispatcher := newEmployeeCommandsFixture()
		req := validCreateRequest(uuid.New())

		dept, err := builder.NewDepartmentBuilder().BuildDomain()
		require.NoError(t, err)
		stored, err := builder.NewEmployeeBuilder().BuildDomain()
		require.NoError(t, err)

		departments.On("FindByID", mock.Anything, req.DepartmentID).Return(dept, nil)
		employees.On("FindByCPF", mock.Anything, mock.Anything).Return(stored, nil)

		result, err := uc.Create(context.Background(), req)
		require.Nil(t, result)
		require.ErrorIs(t, err, errs.ErrCPFAlreadyExists)

		assert.Empty(t, dispatcher.dispatched)
		employees.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("failed save keeps events undispatched", func(t *testing.T) {
		uc, employees, departments, dispatcher := newEmployeeCommandsFixture()
		req := validCreateRequest(uuid.New())

		dept, err := builder.NewDepartmentBuilder().BuildDomain()
		require.NoError(t, err)
		departments.On("FindByID", mock.Anything, req.DepartmentID).Return(dept, nil)
		employees.On("FindByCPF", mock.Anything, mock.Anything).Return(nil, nil)
		employees.On("FindByEmail", mock.Anything, mock.Anything).Return(nil, nil)
		employees.On("Create", mock.Anything, mock.Anything).Return(assert.AnError)

		result, err := uc.Create(context.Background(), req)
		require.Nil(t, result)
		require.Error(t, err)
		assert.Empty(t, dispatcher.dispatched)
	})
}

func TestEmployeeCommands_Update(t *testing.T) {
	req := commands.UpdateEmployeeRequest{
		FirstName:    "Maria",
		LastName:     "Souza",
		Email:        "maria@y.com",
		PhoneNumber:  "11912345678",
		Street:       "Av. Paulista",
		Number:       "1000",
		Neighborhood: "Bela Vista",
		City:         "São Paulo",
		State:        "SP",
		ZipCode:      "01310-100",
		Salary:       6000,
		Position:     "Senior Analyst",
		DepartmentID: uuid.New(),
	}

	t.Run("applies personal, address and job info atomically", func(t *testing.T) {
		uc, employees, departments, dispatcher := newEmployeeCommandsFixture()

		emp, err := builder.NewEmployeeBuilder().BuildDomain()
		require.NoError(t, err)
		emp.PullEvents()
		dept, err := builder.NewDepartmentBuilder().BuildDomain()
		require.NoError(t, err)

		employees.On("FindByID", mock.Anything, emp.ID()).Return(emp, nil)
		departments.On("FindByID", mock.Anything, req.DepartmentID).Return(dept, nil)
		employees.On("Update", mock.Anything, emp).Return(nil)

		err = uc.Update(context.Background(), emp.ID(), req)
		require.NoError(t, err)

		assert.Equal(t, "Maria Souza", emp.FullName())
		assert.Equal(t, "Senior Analyst", emp.Position())
		assert.Equal(t, req.DepartmentID, emp.DepartmentID())
		require.NotNil(t, emp.UpdatedAt())
		assert.Equal(t, testNow, *emp.UpdatedAt())

		require.Len(t, dispatcher.dispatched, 1)
		require.Len(t, dispatcher.dispatched[0], 1)
		assert.IsType(t, employee.EmployeeUpdated{}, dispatcher.dispatched[0][0])
	})

	t.Run("missing employee", func(t *testing.T) {
		uc, employees, _, dispatcher := newEmployeeCommandsFixture()
		id := uuid.New()

		employees.On("FindByID", mock.Anything, id).Return(nil, nil)

		err := uc.Update(context.Background(), id, req)
		require.ErrorIs(t, err, errs.ErrEmployeeNotFound)
		assert.Empty(t, dispatcher.dispatched)
	})

	t.Run("invalid email aborts before any write", func(t *testing.T) {
		uc, employees, departments, dispatcher := newEmployeeCommandsFixture()

		emp, err := builder.NewEmployeeBuilder().BuildDomain()
		require.NoError(t, err)
		emp.PullEvents()
		dept, err := builder.NewDepartmentBuilder().BuildDomain()
		require.NoError(t, err)

		bad := req
		bad.Email = "broken"

		employees.On("FindByID", mock.Anything, emp.ID()).Return(emp, nil)
		departments.On("FindByID", mock.Anything, bad.DepartmentID).Return(dept, nil)

		err = uc.Update(context.Background(), emp.ID(), bad)
		require.ErrorIs(t, err, employee.ErrInvalidEmail)

		assert.Equal(t, "Ana Silva", emp.FullName())
		assert.Empty(t, dispatcher.dispatched)
		employees.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestEmployeeCommands_ActivateDeactivate(t *testing.T) {
	t.Run("activate on active employee still saves and dispatches", func(t *testing.T) {
		uc, employees, _, dispatcher := newEmployeeCommandsFixture()

		emp, err := builder.NewEmployeeBuilder().BuildDomain()
		require.NoError(t, err)
		emp.PullEvents()
		require.True(t, emp.IsActive())

		employees.On("FindByID", mock.Anything, emp.ID()).Return(emp, nil)
		employees.On("Update", mock.Anything, emp).Return(nil)

		err = uc.Activate(context.Background(), emp.ID())
		require.NoError(t, err)

		require.Len(t, dispatcher.dispatched, 1)
		require.Len(t, dispatcher.dispatched[0], 1)
		assert.IsType(t, employee.EmployeeActivated{}, dispatcher.dispatched[0][0])
	})

	t.Run("deactivate", func(t *testing.T) {
		uc, employees, _, dispatcher := newEmployeeCommandsFixture()

		emp, err := builder.NewEmployeeBuilder().BuildDomain()
		require.NoError(t, err)
		emp.PullEvents()

		employees.On("FindByID", mock.Anything, emp.ID()).Return(emp, nil)
		employees.On("Update", mock.Anything, emp).Return(nil)

		err = uc.Deactivate(context.Background(), emp.ID())
		require.NoError(t, err)

		assert.False(t, emp.IsActive())
		require.Len(t, dispatcher.dispatched, 1)
		assert.IsType(t, employee.EmployeeDeactivated{}, dispatcher.dispatched[0][0])
	})
}

func TestEmployeeCommands_Delete(t *testing.T) {
	t.Run("deletes existing employee", func(t *testing.T) {
		uc, employees, _, _ := newEmployeeCommandsFixture()

		emp, err := builder.NewEmployeeBuilder().BuildDomain()
		require.NoError(t, err)

		employees.On("FindByID", mock.Anything, emp.ID()).Return(emp, nil)
		employees.On("Delete", mock.Anything, emp.ID()).Return(nil)

		require.NoError(t, uc.Delete(context.Background(), emp.ID()))
		employees.AssertExpectations(t)
	})

	t.Run("missing employee", func(t *testing.T) {
		uc, employees, _, _ := newEmployeeCommandsFixture()
		id := uuid.New()

		employees.On("FindByID", mock.Anything, id).Return(nil, nil)

		require.ErrorIs(t, uc.Delete(context.Background(), id), errs.ErrEmployeeNotFound)
		employees.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
