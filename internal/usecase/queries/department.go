package queries

import (
	"context"
	"time"

	"employee-registry/internal/pkg/errs"

	"github.com/google/uuid"
)

type DepartmentView struct {
	ID          uuid.UUID
	Name        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

type DepartmentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*DepartmentView, error)
	GetByName(ctx context.Context, name string) (*DepartmentView, error)
	ListAll(ctx context.Context) ([]*DepartmentView, error)
	ListActive(ctx context.Context) ([]*DepartmentView, error)
}

// DepartmentReadStore lists views ordered by name. Lookup misses are
// (nil, nil).
type DepartmentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*DepartmentView, error)
	FindByName(ctx context.Context, name string) (*DepartmentView, error)
	ListAll(ctx context.Context) ([]*DepartmentView, error)
	ListActive(ctx context.Context) ([]*DepartmentView, error)
}

type departmentQueriesImpl struct {
	readStore DepartmentReadStore
}

func NewDepartmentQueries(readStore DepartmentReadStore) DepartmentQueries {
	return &departmentQueriesImpl{readStore: readStore}
}

func (q *departmentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*DepartmentView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, errs.ErrDepartmentNotFound
	}
	return view, nil
}

func (q *departmentQueriesImpl) GetByName(ctx context.Context, name string) (*DepartmentView, error) {
	view, err := q.readStore.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, errs.ErrDepartmentNotFound
	}
	return view, nil
}

func (q *departmentQueriesImpl) ListAll(ctx context.Context) ([]*DepartmentView, error) {
	return q.readStore.ListAll(ctx)
}

func (q *departmentQueriesImpl) ListActive(ctx context.Context) ([]*DepartmentView, error) {
	return q.readStore.ListActive(ctx)
}
