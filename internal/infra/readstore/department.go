package readstore

import (
	"context"
	"errors"

	"employee-registry/internal/infra"
	"employee-registry/internal/infra/db"
	"employee-registry/internal/pkg/pgconv"
	"employee-registry/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const departmentViewQuery = `
	SELECT id, name, description, is_active, created_at, updated_at
	  FROM departments`

type DepartmentReadStore struct {
	db db.Queryer
}

func NewDepartmentReadStore(q db.Queryer) *DepartmentReadStore {
	return &DepartmentReadStore{db: q}
}

func (s *DepartmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.DepartmentView, error) {
	row := s.db.QueryRow(ctx, departmentViewQuery+` WHERE id = $1`, id)
	return s.scanOne("find department view by id", row)
}

func (s *DepartmentReadStore) FindByName(ctx context.Context, name string) (*queries.DepartmentView, error) {
	row := s.db.QueryRow(ctx, departmentViewQuery+` WHERE name = $1`, name)
	return s.scanOne("find department view by name", row)
}

func (s *DepartmentReadStore) ListAll(ctx context.Context) ([]*queries.DepartmentView, error) {
	return s.list(ctx, "list departments", departmentViewQuery+` ORDER BY name`)
}

func (s *DepartmentReadStore) ListActive(ctx context.Context) ([]*queries.DepartmentView, error) {
	return s.list(ctx, "list active departments", departmentViewQuery+` WHERE is_active ORDER BY name`)
}

func (s *DepartmentReadStore) list(ctx context.Context, msg, query string) ([]*queries.DepartmentView, error) {
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}
	defer rows.Close()

	views := make([]*queries.DepartmentView, 0)
	for rows.Next() {
		view, err := scanDepartmentView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(msg, err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}
	return views, nil
}

func (s *DepartmentReadStore) scanOne(msg string, row pgx.Row) (*queries.DepartmentView, error) {
	view, err := scanDepartmentView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr(msg, err)
	}
	return view, nil
}

func scanDepartmentView(row pgx.Row) (*queries.DepartmentView, error) {
	var (
		view      queries.DepartmentView
		updatedAt pgtype.Timestamptz
	)

	if err := row.Scan(&view.ID, &view.Name, &view.Description, &view.IsActive, &view.CreatedAt, &updatedAt); err != nil {
		return nil, err
	}

	view.UpdatedAt = pgconv.TimePtrFromPgtype(updatedAt)
	return &view, nil
}
