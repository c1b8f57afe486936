package employee

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventEmployeeCreated     = "employee.created"
	EventEmployeeUpdated     = "employee.updated"
	EventEmployeeActivated   = "employee.activated"
	EventEmployeeDeactivated = "employee.deactivated"
)

type EmployeeCreated struct {
	EmployeeID   uuid.UUID
	FirstName    string
	LastName     string
	Email        string
	CPF          string
	DepartmentID uuid.UUID
	At           time.Time
}

func (e EmployeeCreated) EventName() string      { return EventEmployeeCreated }
func (e EmployeeCreated) AggregateID() uuid.UUID { return e.EmployeeID }
func (e EmployeeCreated) OccurredOn() time.Time  { return e.At }

type EmployeeUpdated struct {
	EmployeeID uuid.UUID
	FirstName  string
	LastName   string
	Email      string
	At         time.Time
}

func (e EmployeeUpdated) EventName() string      { return EventEmployeeUpdated }
func (e EmployeeUpdated) AggregateID() uuid.UUID { return e.EmployeeID }
func (e EmployeeUpdated) OccurredOn() time.Time  { return e.At }

type EmployeeActivated struct {
	EmployeeID uuid.UUID
	At         time.Time
}

func (e EmployeeActivated) EventName() string      { return EventEmployeeActivated }
func (e EmployeeActivated) AggregateID() uuid.UUID { return e.EmployeeID }
func (e EmployeeActivated) OccurredOn() time.Time  { return e.At }

type EmployeeDeactivated struct {
	EmployeeID uuid.UUID
	At         time.Time
}

func (e EmployeeDeactivated) EventName() string      { return EventEmployeeDeactivated }
func (e EmployeeDeactivated) AggregateID() uuid.UUID { return e.EmployeeID }
func (e EmployeeDeactivated) OccurredOn() time.Time  { return e.At }
