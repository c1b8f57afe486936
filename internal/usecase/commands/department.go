package commands

import (
	"context"

	"employee-registry/internal/domain/department"
	"employee-registry/internal/pkg/clock"
	"employee-registry/internal/pkg/errs"
	"employee-registry/internal/usecase/shared"

	"github.com/google/uuid"
)

type DepartmentCommands interface {
	Create(ctx context.Context, req CreateDepartmentRequest) (*CreateDepartmentResult, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateDepartmentRequest) error
	Activate(ctx context.Context, id uuid.UUID) error
	Deactivate(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateDepartmentRequest struct {
	Name        string
	Description string
}

type UpdateDepartmentRequest struct {
	Name        string
	Description string
}

type CreateDepartmentResult struct {
	DepartmentID uuid.UUID
}

type departmentCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewDepartmentCommands(uow shared.UnitOfWork, clk clock.Clock) DepartmentCommands {
	return &departmentCommandsImpl{uow: uow, clock: clk}
}

func (uc *departmentCommandsImpl) Create(ctx context.Context, req CreateDepartmentRequest) (*CreateDepartmentResult, error) {
	dept, err := department.NewDepartment(uc.clock.Now(), req.Name, req.Description)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, derr := tx.Departments().FindByName(ctx, dept.Name())
		if derr != nil {
			return derr
		}
		if existing != nil {
			return errs.ErrDepartmentNameTaken
		}
		return tx.Departments().Create(ctx, dept)
	})
	if err != nil {
		return nil, err
	}

	return &CreateDepartmentResult{DepartmentID: dept.ID()}, nil
}

func (uc *departmentCommandsImpl) Update(ctx context.Context, id uuid.UUID, req UpdateDepartmentRequest) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		dept, derr := tx.Departments().FindByID(ctx, id)
		if derr != nil {
			return derr
		}
		if dept == nil {
			return errs.ErrDepartmentNotFound
		}

		existing, derr := tx.Departments().FindByName(ctx, req.Name)
		if derr != nil {
			return derr
		}
		if existing != nil && existing.ID() != id {
			return errs.ErrDepartmentNameTaken
		}

		if derr = dept.Update(uc.clock.Now(), req.Name, req.Description); derr != nil {
			return errs.Mark(derr, errs.ErrDomainValidation)
		}
		return tx.Departments().Update(ctx, dept)
	})
}

func (uc *departmentCommandsImpl) Activate(ctx context.Context, id uuid.UUID) error {
	return uc.setActive(ctx, id, true)
}

func (uc *departmentCommandsImpl) Deactivate(ctx context.Context, id uuid.UUID) error {
	return uc.setActive(ctx, id, false)
}

func (uc *departmentCommandsImpl) setActive(ctx context.Context, id uuid.UUID, active bool) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		dept, derr := tx.Departments().FindByID(ctx, id)
		if derr != nil {
			return derr
		}
		if dept == nil {
			return errs.ErrDepartmentNotFound
		}

		if active {
			dept.Activate(uc.clock.Now())
		} else {
			dept.Deactivate(uc.clock.Now())
		}

		return tx.Departments().Update(ctx, dept)
	})
}

func (uc *departmentCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		dept, derr := tx.Departments().FindByID(ctx, id)
		if derr != nil {
			return derr
		}
		if dept == nil {
			return errs.ErrDepartmentNotFound
		}
		return tx.Departments().Delete(ctx, id)
	})
}
