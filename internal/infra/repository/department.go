package repository

import (
	"context"
	"errors"
	"time"

	"employee-registry/internal/domain/department"
	"employee-registry/internal/infra/db"
	"employee-registry/internal/pkg/errs"
	"employee-registry/internal/pkg/pgconv"
	"employee-registry/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const departmentColumns = ` id, name, description, is_active, created_at, updated_at`

type DepartmentRepository struct {
	db db.Queryer
}

func NewDepartmentRepository(q db.Queryer) shared.DepartmentRepository {
	return &DepartmentRepository{db: q}
}

func (r *DepartmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*department.Department, error) {
	row := r.db.QueryRow(ctx, `SELECT`+departmentColumns+` FROM departments WHERE id = $1`, id)
	return r.scanOne("find department by id", row)
}

func (r *DepartmentRepository) FindByName(ctx context.Context, name string) (*department.Department, error) {
	row := r.db.QueryRow(ctx, `SELECT`+departmentColumns+` FROM departments WHERE name = $1`, name)
	return r.scanOne("find department by name", row)
}

func (r *DepartmentRepository) Create(ctx context.Context, dept *department.Department) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO departments (id, name, description, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		dept.ID(),
		dept.Name(),
		dept.Description(),
		dept.IsActive(),
		dept.CreatedAt(),
		pgconv.TimePtrToPgtype(dept.UpdatedAt()),
	)
	if err != nil {
		return translatePgError("insert department", err)
	}
	return nil
}

func (r *DepartmentRepository) Update(ctx context.Context, dept *department.Department) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE departments
		   SET name = $1,
		       description = $2,
		       is_active = $3,
		       updated_at = $4
		 WHERE id = $5`,
		dept.Name(),
		dept.Description(),
		dept.IsActive(),
		pgconv.TimePtrToPgtype(dept.UpdatedAt()),
		dept.ID(),
	)
	if err != nil {
		return translatePgError("update department", err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrDepartmentNotFound
	}
	return nil
}

func (r *DepartmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return translatePgError("delete department", err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrDepartmentNotFound
	}
	return nil
}

func (r *DepartmentRepository) scanOne(msg string, row pgx.Row) (*department.Department, error) {
	dept, err := scanDepartment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translatePgError(msg, err)
	}
	return dept, nil
}

func scanDepartment(row pgx.Row) (*department.Department, error) {
	var (
		id          uuid.UUID
		name        string
		description string
		isActive    bool
		createdAt   time.Time
		updatedAt   pgtype.Timestamptz
	)

	if err := row.Scan(&id, &name, &description, &isActive, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	return department.ReconstructDepartment(
		id,
		name, description,
		isActive,
		createdAt,
		pgconv.TimePtrFromPgtype(updatedAt),
	), nil
}
