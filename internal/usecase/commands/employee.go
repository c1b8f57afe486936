package commands

import (
	"context"
	"time"

	"employee-registry/internal/domain/employee"
	"employee-registry/internal/pkg/clock"
	"employee-registry/internal/pkg/errs"
	"employee-registry/internal/usecase/shared"

	"github.com/google/uuid"
)

type EmployeeCommands interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (*CreateEmployeeResult, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateEmployeeRequest) error
	Activate(ctx context.Context, id uuid.UUID) error
	Deactivate(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateEmployeeRequest struct {
	FirstName    string
	LastName     string
	CPF          string
	Email        string
	PhoneNumber  string
	Street       string
	Number       string
	Complement   string
	Neighborhood string
	City         string
	State        string
	ZipCode      string
	BirthDate    time.Time
	HireDate     time.Time
	Salary       float64
	Position     string
	DepartmentID uuid.UUID
}

// UpdateEmployeeRequest carries the full mutable state: personal info,
// address and job info are applied in one transaction.
type UpdateEmployeeRequest struct {
	FirstName    string
	LastName     string
	Email        string
	PhoneNumber  string
	Street       string
	Number       string
	Complement   string
	Neighborhood string
	City         string
	State        string
	ZipCode      string
	Salary       float64
	Position     string
	DepartmentID uuid.UUID
}

type CreateEmployeeResult struct {
	EmployeeID uuid.UUID
}

type employeeCommandsImpl struct {
	uow        shared.UnitOfWork
	clock      clock.Clock
	dispatcher shared.EventDispatcher
}

func NewEmployeeCommands(uow shared.UnitOfWork, clk clock.Clock, dispatcher shared.EventDispatcher) EmployeeCommands {
	return &employeeCommandsImpl{uow: uow, clock: clk, dispatcher: dispatcher}
}

// Create validates the aggregate, verifies the department reference and the
// CPF/email are free, and persists, all in one transaction. The unique
// indexes still arbitrate cross-process races at commit. Events are
// dispatched only after a successful commit.
func (uc *employeeCommandsImpl) Create(ctx context.Context, req CreateEmployeeRequest) (*CreateEmployeeResult, error) {
	emp, err := employee.NewEmployee(uc.clock.Now(), employee.NewEmployeeParams{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		CPF:         req.CPF,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address: employee.AddressParams{
			Street:       req.Street,
			Number:       req.Number,
			Complement:   req.Complement,
			Neighborhood: req.Neighborhood,
			City:         req.City,
			State:        req.State,
			ZipCode:      req.ZipCode,
		},
		BirthDate:    req.BirthDate,
		HireDate:     req.HireDate,
		Salary:       req.Salary,
		Position:     req.Position,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		dept, derr := tx.Departments().FindByID(ctx, req.DepartmentID)
		if derr != nil {
			return derr
		}
		if dept == nil {
			return errs.ErrDepartmentNotFound
		}

		existing, derr := tx.Employees().FindByCPF(ctx, emp.CPF())
		if derr != nil {
			return derr
		}
		if existing != nil {
			return errs.ErrCPFAlreadyExists
		}

		existing, derr = tx.Employees().FindByEmail(ctx, emp.Email())
		if derr != nil {
			return derr
		}
		if existing != nil {
			return errs.ErrEmailAlreadyExists
		}

		return tx.Employees().Create(ctx, emp)
	})
	if err != nil {
		return nil, err
	}

	uc.dispatcher.Dispatch(ctx, emp.PullEvents())
	return &CreateEmployeeResult{EmployeeID: emp.ID()}, nil
}

func (uc *employeeCommandsImpl) Update(ctx context.Context, id uuid.UUID, req UpdateEmployeeRequest) error {
	var emp *employee.Employee

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		emp, derr = tx.Employees().FindByID(ctx, id)
		if derr != nil {
			return derr
		}
		if emp == nil {
			return errs.ErrEmployeeNotFound
		}

		dept, derr := tx.Departments().FindByID(ctx, req.DepartmentID)
		if derr != nil {
			return derr
		}
		if dept == nil {
			return errs.ErrDepartmentNotFound
		}

		now := uc.clock.Now()
		if derr = emp.UpdatePersonalInfo(now, req.FirstName, req.LastName, req.Email, req.PhoneNumber); derr != nil {
			return errs.Mark(derr, errs.ErrDomainValidation)
		}
		if derr = emp.UpdateAddress(now, employee.AddressParams{
			Street:       req.Street,
			Number:       req.Number,
			Complement:   req.Complement,
			Neighborhood: req.Neighborhood,
			City:         req.City,
			State:        req.State,
			ZipCode:      req.ZipCode,
		}); derr != nil {
			return errs.Mark(derr, errs.ErrDomainValidation)
		}
		if derr = emp.UpdateJobInfo(now, req.Position, req.Salary, req.DepartmentID); derr != nil {
			return errs.Mark(derr, errs.ErrDomainValidation)
		}

		return tx.Employees().Update(ctx, emp)
	})
	if err != nil {
		return err
	}

	uc.dispatcher.Dispatch(ctx, emp.PullEvents())
	return nil
}

func (uc *employeeCommandsImpl) Activate(ctx context.Context, id uuid.UUID) error {
	return uc.setActive(ctx, id, true)
}

func (uc *employeeCommandsImpl) Deactivate(ctx context.Context, id uuid.UUID) error {
	return uc.setActive(ctx, id, false)
}

func (uc *employeeCommandsImpl) setActive(ctx context.Context, id uuid.UUID, active bool) error {
	var emp *employee.Employee

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		emp, derr = tx.Employees().FindByID(ctx, id)
		if derr != nil {
			return derr
		}
		if emp == nil {
			return errs.ErrEmployeeNotFound
		}

		if active {
			emp.Activate(uc.clock.Now())
		} else {
			emp.Deactivate(uc.clock.Now())
		}

		return tx.Employees().Update(ctx, emp)
	})
	if err != nil {
		return err
	}

	uc.dispatcher.Dispatch(ctx, emp.PullEvents())
	return nil
}

func (uc *employeeCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		emp, derr := tx.Employees().FindByID(ctx, id)
		if derr != nil {
			return derr
		}
		if emp == nil {
			return errs.ErrEmployeeNotFound
		}
		return tx.Employees().Delete(ctx, id)
	})
}
