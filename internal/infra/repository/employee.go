package repository

import (
	"context"
	"errors"
	"time"

	"employee-registry/internal/domain/employee"
	"employee-registry/internal/infra/db"
	"employee-registry/internal/pkg/errs"
	"employee-registry/internal/pkg/pgconv"
	"employee-registry/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const employeeColumns = `
	id, first_name, last_name, cpf, email, phone_number,
	street, number, complement, neighborhood, city, state, zip_code, country,
	birth_date, hire_date, salary, position, department_id,
	is_active, created_at, updated_at`

type EmployeeRepository struct {
	db db.Queryer
}

func NewEmployeeRepository(q db.Queryer) shared.EmployeeRepository {
	return &EmployeeRepository{db: q}
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*employee.Employee, error) {
	row := r.db.QueryRow(ctx, `SELECT`+employeeColumns+` FROM employees WHERE id = $1`, id)
	return r.scanOne("find employee by id", row)
}

func (r *EmployeeRepository) FindByCPF(ctx context.Context, cpf employee.CPF) (*employee.Employee, error) {
	row := r.db.QueryRow(ctx, `SELECT`+employeeColumns+` FROM employees WHERE cpf = $1`, cpf.Value())
	return r.scanOne("find employee by cpf", row)
}

func (r *EmployeeRepository) FindByEmail(ctx context.Context, email employee.Email) (*employee.Employee, error) {
	row := r.db.QueryRow(ctx, `SELECT`+employeeColumns+` FROM employees WHERE email = $1`, email.Value())
	return r.scanOne("find employee by email", row)
}

func (r *EmployeeRepository) Create(ctx context.Context, emp *employee.Employee) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO employees (
			id, first_name, last_name, cpf, email, phone_number,
			street, number, complement, neighborhood, city, state, zip_code, country,
			birth_date, hire_date, salary, position, department_id,
			is_active, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19,
			$20, $21, $22
		)`,
		emp.ID(),
		emp.FirstName(),
		emp.LastName(),
		emp.CPF().Value(),
		emp.Email().Value(),
		emp.PhoneNumber().Value(),
		emp.Address().Street(),
		emp.Address().Number(),
		nullableString(emp.Address().Complement()),
		emp.Address().Neighborhood(),
		emp.Address().City(),
		emp.Address().State(),
		emp.Address().ZipCode(),
		emp.Address().Country(),
		emp.BirthDate(),
		emp.HireDate(),
		emp.Salary(),
		emp.Position(),
		emp.DepartmentID(),
		emp.IsActive(),
		emp.CreatedAt(),
		pgconv.TimePtrToPgtype(emp.UpdatedAt()),
	)
	if err != nil {
		return translatePgError("insert employee", err)
	}
	return nil
}

func (r *EmployeeRepository) Update(ctx context.Context, emp *employee.Employee) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE employees
		   SET first_name = $1,
		       last_name = $2,
		       email = $3,
		       phone_number = $4,
		       street = $5,
		       number = $6,
		       complement = $7,
		       neighborhood = $8,
		       city = $9,
		       state = $10,
		       zip_code = $11,
		       country = $12,
		       salary = $13,
		       position = $14,
		       department_id = $15,
		       is_active = $16,
		       updated_at = $17
		 WHERE id = $18`,
		emp.FirstName(),
		emp.LastName(),
		emp.Email().Value(),
		emp.PhoneNumber().Value(),
		emp.Address().Street(),
		emp.Address().Number(),
		nullableString(emp.Address().Complement()),
		emp.Address().Neighborhood(),
		emp.Address().City(),
		emp.Address().State(),
		emp.Address().ZipCode(),
		emp.Address().Country(),
		emp.Salary(),
		emp.Position(),
		emp.DepartmentID(),
		emp.IsActive(),
		pgconv.TimePtrToPgtype(emp.UpdatedAt()),
		emp.ID(),
	)
	if err != nil {
		return translatePgError("update employee", err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrEmployeeNotFound
	}
	return nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return translatePgError("delete employee", err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrEmployeeNotFound
	}
	return nil
}

func (r *EmployeeRepository) scanOne(msg string, row pgx.Row) (*employee.Employee, error) {
	emp, err := scanEmployee(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translatePgError(msg, err)
	}
	return emp, nil
}

func scanEmployee(row pgx.Row) (*employee.Employee, error) {
	var (
		id           uuid.UUID
		firstName    string
		lastName     string
		cpfValue     string
		emailValue   string
		phoneValue   string
		street       string
		number       string
		complement   pgtype.Text
		neighborhood string
		city         string
		state        string
		zipCode      string
		country      string
		birthDate    time.Time
		hireDate     time.Time
		salary       float64
		position     string
		departmentID uuid.UUID
		isActive     bool
		createdAt    time.Time
		updatedAt    pgtype.Timestamptz
	)

	if err := row.Scan(
		&id, &firstName, &lastName, &cpfValue, &emailValue, &phoneValue,
		&street, &number, &complement, &neighborhood, &city, &state, &zipCode, &country,
		&birthDate, &hireDate, &salary, &position, &departmentID,
		&isActive, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	// Persisted values already passed creation-time validation; rebuilding
	// through the constructors guards against rows written by other tools.
	cpf, err := employee.NewCPF(cpfValue)
	if err != nil {
		return nil, errs.Wrap(err, "stored cpf is invalid")
	}
	email, err := employee.NewEmail(emailValue)
	if err != nil {
		return nil, errs.Wrap(err, "stored email is invalid")
	}
	phone, err := employee.NewPhoneNumber(phoneValue)
	if err != nil {
		return nil, errs.Wrap(err, "stored phone number is invalid")
	}
	address, err := employee.NewAddress(employee.AddressParams{
		Street:       street,
		Number:       number,
		Complement:   complement.String,
		Neighborhood: neighborhood,
		City:         city,
		State:        state,
		ZipCode:      zipCode,
		Country:      country,
	})
	if err != nil {
		return nil, errs.Wrap(err, "stored address is invalid")
	}

	return employee.ReconstructEmployee(
		id,
		firstName, lastName,
		cpf,
		email,
		phone,
		address,
		birthDate, hireDate,
		salary,
		position,
		departmentID,
		isActive,
		createdAt,
		pgconv.TimePtrFromPgtype(updatedAt),
	), nil
}

func nullableString(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}
