package employee

import (
	"errors"
	"strings"
	"time"

	"employee-registry/internal/domain/shared"

	"github.com/google/uuid"
)

var (
	ErrEmptyFirstName     = errors.New("first name cannot be empty")
	ErrEmptyLastName      = errors.New("last name cannot be empty")
	ErrEmptyPosition      = errors.New("position cannot be empty")
	ErrNonPositiveSalary  = errors.New("salary must be greater than zero")
	ErrBirthDateInFuture  = errors.New("birth date must be in the past")
	ErrHireDateInFuture   = errors.New("hire date cannot be in the future")
	ErrEmptyDepartmentRef = errors.New("department id cannot be empty")
)

// Employee is the consistency boundary for an employee record. All mutation
// goes through its methods; every method validates before writing any field,
// so a failed operation leaves the aggregate unchanged.
type Employee struct {
	id           uuid.UUID
	firstName    string
	lastName     string
	cpf          CPF
	email        Email
	phone        PhoneNumber
	address      Address
	birthDate    time.Time
	hireDate     time.Time
	salary       float64
	position     string
	departmentID uuid.UUID
	isActive     bool
	createdAt    time.Time
	updatedAt    *time.Time

	events []shared.DomainEvent
}

type NewEmployeeParams struct {
	FirstName    string
	LastName     string
	CPF          string
	Email        string
	PhoneNumber  string
	Address      AddressParams
	BirthDate    time.Time
	HireDate     time.Time
	Salary       float64
	Position     string
	DepartmentID uuid.UUID
}

// NewEmployee validates every input and either returns a fully valid
// aggregate with a queued created event, or an error and no instance.
// Uniqueness of CPF and email is a persistence concern and is not checked
// here. The caller supplies now explicitly so date checks are deterministic.
func NewEmployee(now time.Time, p NewEmployeeParams) (*Employee, error) {
	firstName := strings.TrimSpace(p.FirstName)
	if firstName == "" {
		return nil, ErrEmptyFirstName
	}
	lastName := strings.TrimSpace(p.LastName)
	if lastName == "" {
		return nil, ErrEmptyLastName
	}
	position := strings.TrimSpace(p.Position)
	if position == "" {
		return nil, ErrEmptyPosition
	}
	if p.Salary <= 0 {
		return nil, ErrNonPositiveSalary
	}
	if !p.BirthDate.Before(now) {
		return nil, ErrBirthDateInFuture
	}
	if p.HireDate.After(now) {
		return nil, ErrHireDateInFuture
	}
	if p.DepartmentID == uuid.Nil {
		return nil, ErrEmptyDepartmentRef
	}

	cpf, err := NewCPF(p.CPF)
	if err != nil {
		return nil, err
	}
	email, err := NewEmail(p.Email)
	if err != nil {
		return nil, err
	}
	phone, err := NewPhoneNumber(p.PhoneNumber)
	if err != nil {
		return nil, err
	}
	address, err := NewAddress(p.Address)
	if err != nil {
		return nil, err
	}

	e := &Employee{
		id:           uuid.New(),
		firstName:    firstName,
		lastName:     lastName,
		cpf:          cpf,
		email:        email,
		phone:        phone,
		address:      address,
		birthDate:    p.BirthDate,
		hireDate:     p.HireDate,
		salary:       p.Salary,
		position:     position,
		departmentID: p.DepartmentID,
		isActive:     true,
		createdAt:    now,
	}

	e.record(EmployeeCreated{
		EmployeeID:   e.id,
		FirstName:    e.firstName,
		LastName:     e.lastName,
		Email:        e.email.Value(),
		CPF:          e.cpf.Value(),
		DepartmentID: e.departmentID,
		At:           now,
	})

	return e, nil
}

// ReconstructEmployee rebuilds an aggregate from persisted state. It bypasses
// creation-time checks and queues no events.
func ReconstructEmployee(
	id uuid.UUID,
	firstName, lastName string,
	cpf CPF,
	email Email,
	phone PhoneNumber,
	address Address,
	birthDate, hireDate time.Time,
	salary float64,
	position string,
	departmentID uuid.UUID,
	isActive bool,
	createdAt time.Time,
	updatedAt *time.Time,
) *Employee {
	return &Employee{
		id:           id,
		firstName:    firstName,
		lastName:     lastName,
		cpf:          cpf,
		email:        email,
		phone:        phone,
		address:      address,
		birthDate:    birthDate,
		hireDate:     hireDate,
		salary:       salary,
		position:     position,
		departmentID: departmentID,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// UpdatePersonalInfo replaces the name fields and the Email/PhoneNumber value
// objects. CPF, address and job info are untouched.
func (e *Employee) UpdatePersonalInfo(now time.Time, firstName, lastName, email, phone string) error {
	first := strings.TrimSpace(firstName)
	if first == "" {
		return ErrEmptyFirstName
	}
	last := strings.TrimSpace(lastName)
	if last == "" {
		return ErrEmptyLastName
	}
	emailVO, err := NewEmail(email)
	if err != nil {
		return err
	}
	phoneVO, err := NewPhoneNumber(phone)
	if err != nil {
		return err
	}

	e.firstName = first
	e.lastName = last
	e.email = emailVO
	e.phone = phoneVO
	e.touch(now)

	e.record(EmployeeUpdated{
		EmployeeID: e.id,
		FirstName:  e.firstName,
		LastName:   e.lastName,
		Email:      e.email.Value(),
		At:         now,
	})

	return nil
}

// UpdateAddress replaces the Address value object wholesale. No event is
// queued; address changes are not observable facts to other components.
func (e *Employee) UpdateAddress(now time.Time, p AddressParams) error {
	address, err := NewAddress(p)
	if err != nil {
		return err
	}

	e.address = address
	e.touch(now)
	return nil
}

func (e *Employee) UpdateJobInfo(now time.Time, position string, salary float64, departmentID uuid.UUID) error {
	pos := strings.TrimSpace(position)
	if pos == "" {
		return ErrEmptyPosition
	}
	if salary <= 0 {
		return ErrNonPositiveSalary
	}
	if departmentID == uuid.Nil {
		return ErrEmptyDepartmentRef
	}

	e.position = pos
	e.salary = salary
	e.departmentID = departmentID
	e.touch(now)
	return nil
}

// Activate is idempotent on the flag but always stamps updatedAt and always
// queues the event, even when the employee is already active.
func (e *Employee) Activate(now time.Time) {
	e.isActive = true
	e.touch(now)
	e.record(EmployeeActivated{EmployeeID: e.id, At: now})
}

func (e *Employee) Deactivate(now time.Time) {
	e.isActive = false
	e.touch(now)
	e.record(EmployeeDeactivated{EmployeeID: e.id, At: now})
}

func (e *Employee) FullName() string {
	return e.firstName + " " + e.lastName
}

// Age returns whole years since the birth date, counting a year only once
// its anniversary has passed.
func (e *Employee) Age(now time.Time) int {
	return wholeYearsBetween(e.birthDate, now)
}

func (e *Employee) YearsOfService(now time.Time) int {
	return wholeYearsBetween(e.hireDate, now)
}

func wholeYearsBetween(from, to time.Time) int {
	years := to.Year() - from.Year()
	if from.AddDate(years, 0, 0).After(to) {
		years--
	}
	return years
}

// PullEvents returns the queued domain events and clears the queue. Callers
// must invoke it only after a successful save so a failed save retries with
// the original events.
func (e *Employee) PullEvents() []shared.DomainEvent {
	events := e.events
	e.events = nil
	return events
}

func (e *Employee) record(event shared.DomainEvent) {
	e.events = append(e.events, event)
}

func (e *Employee) touch(now time.Time) {
	t := now
	e.updatedAt = &t
}

func (e *Employee) ID() uuid.UUID            { return e.id }
func (e *Employee) FirstName() string        { return e.firstName }
func (e *Employee) LastName() string         { return e.lastName }
func (e *Employee) CPF() CPF                 { return e.cpf }
func (e *Employee) Email() Email             { return e.email }
func (e *Employee) PhoneNumber() PhoneNumber { return e.phone }
func (e *Employee) Address() Address         { return e.address }
func (e *Employee) BirthDate() time.Time     { return e.birthDate }
func (e *Employee) HireDate() time.Time      { return e.hireDate }
func (e *Employee) Salary() float64          { return e.salary }
func (e *Employee) Position() string         { return e.position }
func (e *Employee) DepartmentID() uuid.UUID  { return e.departmentID }
func (e *Employee) IsActive() bool           { return e.isActive }
func (e *Employee) CreatedAt() time.Time     { return e.createdAt }
func (e *Employee) UpdatedAt() *time.Time    { return e.updatedAt }
