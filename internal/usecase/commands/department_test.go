//go:build unit

package commands_test

import (
	"context"
	"testing"

	"employee-registry/internal/domain/department"
	"employee-registry/internal/pkg/clock"
	"employee-registry/internal/pkg/errs"
	"employee-registry/internal/usecase/commands"
	"employee-registry/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDepartmentCommandsFixture() (commands.DepartmentCommands, *MockDepartmentRepository) {
	departments := new(MockDepartmentRepository)
	uow := &fakeUoW{tx: &fakeTx{departments: departments}}
	uc := commands.NewDepartmentCommands(uow, clock.NewMockClock(testNow))
	return uc, departments
}

func TestDepartmentCommands_Create(t *testing.T) {
	t.Run("creates when the name is free", func(t *testing.T) {
		uc, departments := newDepartmentCommandsFixture()

		departments.On("FindByName", mock.Anything, "Financeiro").Return(nil, nil)
		departments.On("Create", mock.Anything, mock.Anything).Return(nil)

		result, err := uc.Create(context.Background(), commands.CreateDepartmentRequest{
			Name:        "Financeiro",
			Description: "Gestão financeira e contábil",
		})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, result.DepartmentID)
		departments.AssertExpectations(t)
	})

	t.Run("duplicate name is a conflict", func(t *testing.T) {
		uc, departments := newDepartmentCommandsFixture()

		existing, err := builder.NewDepartmentBuilder().WithName("Financeiro").BuildDomain()
		require.NoError(t, err)
		departments.On("FindByName", mock.Anything, "Financeiro").Return(existing, nil)

		result, err := uc.Create(context.Background(), commands.CreateDepartmentRequest{
			Name:        "Financeiro",
			Description: "Gestão financeira e contábil",
		})
		require.Nil(t, result)
		require.ErrorIs(t, err, errs.ErrDepartmentNameTaken)
		departments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("blank name fails validation before the transaction", func(t *testing.T) {
		uc, departments := newDepartmentCommandsFixture()

		result, err := uc.Create(context.Background(), commands.CreateDepartmentRequest{Name: "  ", Description: "x"})
		require.Nil(t, result)
		require.ErrorIs(t, err, department.ErrEmptyName)
		require.ErrorIs(t, err, errs.ErrDomainValidation)
		departments.AssertNotCalled(t, "FindByName", mock.Anything, mock.Anything)
	})
}

func TestDepartmentCommands_Update(t *testing.T) {
	t.Run("renaming to its own name is allowed", func(t *testing.T) {
		uc, departments := newDepartmentCommandsFixture()

		dept, err := builder.NewDepartmentBuilder().WithName("Comercial").BuildDomain()
		require.NoError(t, err)

		departments.On("FindByID", mock.Anything, dept.ID()).Return(dept, nil)
		departments.On("FindByName", mock.Anything, "Comercial").Return(dept, nil)
		departments.On("Update", mock.Anything, dept).Return(nil)

		err = uc.Update(context.Background(), dept.ID(), commands.UpdateDepartmentRequest{
			Name:        "Comercial",
			Description: "Vendas e relacionamento",
		})
		require.NoError(t, err)
		assert.Equal(t, "Vendas e relacionamento", dept.Description())
	})

	t.Run("renaming onto another department is a conflict", func(t *testing.T) {
		uc, departments := newDepartmentCommandsFixture()

		dept, err := builder.NewDepartmentBuilder().WithName("Comercial").BuildDomain()
		require.NoError(t, err)
		other, err := builder.NewDepartmentBuilder().WithName("Marketing").BuildDomain()
		require.NoError(t, err)

		departments.On("FindByID", mock.Anything, dept.ID()).Return(dept, nil)
		departments.On("FindByName", mock.Anything, "Marketing").Return(other, nil)

		err = uc.Update(context.Background(), dept.ID(), commands.UpdateDepartmentRequest{
			Name:        "Marketing",
			Description: "x",
		})
		require.ErrorIs(t, err, errs.ErrDepartmentNameTaken)
		departments.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("missing department", func(t *testing.T) {
		uc, departments := newDepartmentCommandsFixture()
		id := uuid.New()

		departments.On("FindByID", mock.Anything, id).Return(nil, nil)

		err := uc.Update(context.Background(), id, commands.UpdateDepartmentRequest{Name: "X", Description: "y"})
		require.ErrorIs(t, err, errs.ErrDepartmentNotFound)
	})
}

func TestDepartmentCommands_Delete(t *testing.T) {
	uc, departments := newDepartmentCommandsFixture()

	dept, err := builder.NewDepartmentBuilder().BuildDomain()
	require.NoError(t, err)

	departments.On("FindByID", mock.Anything, dept.ID()).Return(dept, nil)
	departments.On("Delete", mock.Anything, dept.ID()).Return(nil)

	require.NoError(t, uc.Delete(context.Background(), dept.ID()))
	departments.AssertExpectations(t)
}
