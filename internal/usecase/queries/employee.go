package queries

import (
	"context"
	"time"

	"employee-registry/internal/pkg/clock"
	"employee-registry/internal/pkg/errs"

	"github.com/google/uuid"
)

// EmployeeView is the read model joined with the department name. CPF and
// phone carry both the normalized digits and the formatted rendering.
type EmployeeView struct {
	ID                   uuid.UUID
	FirstName            string
	LastName             string
	FullName             string
	CPF                  string
	CPFFormatted         string
	Email                string
	PhoneNumber          string
	PhoneNumberFormatted string
	Street               string
	Number               string
	Complement           *string
	Neighborhood         string
	City                 string
	State                string
	ZipCode              string
	Country              string
	BirthDate            time.Time
	HireDate             time.Time
	Age                  int
	YearsOfService       int
	Salary               float64
	Position             string
	DepartmentID         uuid.UUID
	DepartmentName       string
	IsActive             bool
	CreatedAt            time.Time
	UpdatedAt            *time.Time
}

type EmployeeQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*EmployeeView, error)
	GetByCPF(ctx context.Context, cpf string) (*EmployeeView, error)
	GetByEmail(ctx context.Context, email string) (*EmployeeView, error)
	ListAll(ctx context.Context) ([]*EmployeeView, error)
	ListActive(ctx context.Context) ([]*EmployeeView, error)
	ListByDepartment(ctx context.Context, departmentID uuid.UUID) ([]*EmployeeView, error)
}

// EmployeeReadStore lists views ordered by first name then last name for
// reproducible listings. Lookup misses are (nil, nil).
type EmployeeReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*EmployeeView, error)
	FindByCPF(ctx context.Context, cpf string) (*EmployeeView, error)
	FindByEmail(ctx context.Context, email string) (*EmployeeView, error)
	ListAll(ctx context.Context) ([]*EmployeeView, error)
	ListActive(ctx context.Context) ([]*EmployeeView, error)
	ListByDepartment(ctx context.Context, departmentID uuid.UUID) ([]*EmployeeView, error)
}

type employeeQueriesImpl struct {
	readStore EmployeeReadStore
	clock     clock.Clock
}

func NewEmployeeQueries(readStore EmployeeReadStore, clk clock.Clock) EmployeeQueries {
	return &employeeQueriesImpl{
		readStore: readStore,
		clock:     clk,
	}
}

func (q *employeeQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*EmployeeView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, errs.ErrEmployeeNotFound
	}
	q.fillDerived(view)
	return view, nil
}

func (q *employeeQueriesImpl) GetByCPF(ctx context.Context, cpf string) (*EmployeeView, error) {
	view, err := q.readStore.FindByCPF(ctx, cpf)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, errs.ErrEmployeeNotFound
	}
	q.fillDerived(view)
	return view, nil
}

func (q *employeeQueriesImpl) GetByEmail(ctx context.Context, email string) (*EmployeeView, error) {
	view, err := q.readStore.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, errs.ErrEmployeeNotFound
	}
	q.fillDerived(view)
	return view, nil
}

func (q *employeeQueriesImpl) ListAll(ctx context.Context) ([]*EmployeeView, error) {
	views, err := q.readStore.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	q.fillDerivedAll(views)
	return views, nil
}

func (q *employeeQueriesImpl) ListActive(ctx context.Context) ([]*EmployeeView, error) {
	views, err := q.readStore.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	q.fillDerivedAll(views)
	return views, nil
}

func (q *employeeQueriesImpl) ListByDepartment(ctx context.Context, departmentID uuid.UUID) ([]*EmployeeView, error) {
	views, err := q.readStore.ListByDepartment(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	q.fillDerivedAll(views)
	return views, nil
}

func (q *employeeQueriesImpl) fillDerived(view *EmployeeView) {
	now := q.clock.Now()
	view.FullName = view.FirstName + " " + view.LastName
	view.Age = wholeYearsBetween(view.BirthDate, now)
	view.YearsOfService = wholeYearsBetween(view.HireDate, now)
}

func (q *employeeQueriesImpl) fillDerivedAll(views []*EmployeeView) {
	for _, view := range views {
		q.fillDerived(view)
	}
}

func wholeYearsBetween(from, to time.Time) int {
	years := to.Year() - from.Year()
	if from.AddDate(years, 0, 0).After(to) {
		years--
	}
	return years
}
