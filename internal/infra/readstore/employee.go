package readstore

import (
	"context"
	"errors"

	"employee-registry/internal/domain/employee"
	"employee-registry/internal/infra"
	"employee-registry/internal/infra/db"
	"employee-registry/internal/pkg/pgconv"
	"employee-registry/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const employeeViewQuery = `
	SELECT e.id, e.first_name, e.last_name, e.cpf, e.email, e.phone_number,
	       e.street, e.number, e.complement, e.neighborhood, e.city, e.state, e.zip_code, e.country,
	       e.birth_date, e.hire_date, e.salary, e.position, e.department_id, d.name,
	       e.is_active, e.created_at, e.updated_at
	  FROM employees e
	  JOIN departments d ON d.id = e.department_id`

// Listings order by first then last name so results are reproducible.
const employeeViewOrder = ` ORDER BY e.first_name, e.last_name`

type EmployeeReadStore struct {
	db db.Queryer
}

func NewEmployeeReadStore(q db.Queryer) *EmployeeReadStore {
	return &EmployeeReadStore{db: q}
}

func (s *EmployeeReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.EmployeeView, error) {
	row := s.db.QueryRow(ctx, employeeViewQuery+` WHERE e.id = $1`, id)
	return s.scanOne("find employee view by id", row)
}

func (s *EmployeeReadStore) FindByCPF(ctx context.Context, cpf string) (*queries.EmployeeView, error) {
	// Accept both formatted and bare CPFs from callers.
	normalized, err := employee.NewCPF(cpf)
	if err != nil {
		return nil, nil
	}
	row := s.db.QueryRow(ctx, employeeViewQuery+` WHERE e.cpf = $1`, normalized.Value())
	return s.scanOne("find employee view by cpf", row)
}

func (s *EmployeeReadStore) FindByEmail(ctx context.Context, email string) (*queries.EmployeeView, error) {
	normalized, err := employee.NewEmail(email)
	if err != nil {
		return nil, nil
	}
	row := s.db.QueryRow(ctx, employeeViewQuery+` WHERE e.email = $1`, normalized.Value())
	return s.scanOne("find employee view by email", row)
}

func (s *EmployeeReadStore) ListAll(ctx context.Context) ([]*queries.EmployeeView, error) {
	return s.list(ctx, "list employees", employeeViewQuery+employeeViewOrder)
}

func (s *EmployeeReadStore) ListActive(ctx context.Context) ([]*queries.EmployeeView, error) {
	return s.list(ctx, "list active employees", employeeViewQuery+` WHERE e.is_active`+employeeViewOrder)
}

func (s *EmployeeReadStore) ListByDepartment(ctx context.Context, departmentID uuid.UUID) ([]*queries.EmployeeView, error) {
	return s.list(ctx, "list employees by department",
		employeeViewQuery+` WHERE e.department_id = $1`+employeeViewOrder, departmentID)
}

func (s *EmployeeReadStore) list(ctx context.Context, msg, query string, args ...any) ([]*queries.EmployeeView, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}
	defer rows.Close()

	views := make([]*queries.EmployeeView, 0)
	for rows.Next() {
		view, err := scanEmployeeView(rows)
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

func (s *EmployeeReadStore) scanOne(msg string, row pgx.Row) (*queries.EmployeeView, error) {
	view, err := scanEmployeeView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr(msg, err)
	}
	return view, nil
}

func scanEmployeeView(row pgx.Row) (*queries.EmployeeView, error) {
	var (
		view       queries.EmployeeView
		complement pgtype.Text
		updatedAt  pgtype.Timestamptz
	)

	if err := row.Scan(
		&view.ID, &view.FirstName, &view.LastName, &view.CPF, &view.Email, &view.PhoneNumber,
		&view.Street, &view.Number, &complement, &view.Neighborhood, &view.City, &view.State, &view.ZipCode, &view.Country,
		&view.BirthDate, &view.HireDate, &view.Salary, &view.Position, &view.DepartmentID, &view.DepartmentName,
		&view.IsActive, &view.CreatedAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	view.Complement = pgconv.StringPtrFromPgtype(complement)
	view.UpdatedAt = pgconv.TimePtrFromPgtype(updatedAt)
	view.BirthDate = view.BirthDate.UTC()
	view.HireDate = view.HireDate.UTC()
	view.CPFFormatted = formatCPF(view.CPF)
	view.PhoneNumberFormatted = formatPhone(view.PhoneNumber)
	return &view, nil
}

func formatCPF(value string) string {
	cpf, err := employee.NewCPF(value)
	if err != nil {
		return value
	}
	return cpf.Formatted()
}

func formatPhone(value string) string {
	phone, err := employee.NewPhoneNumber(value)
	if err != nil {
		return value
	}
	return phone.Formatted()
}
