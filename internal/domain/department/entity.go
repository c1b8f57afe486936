package department

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName        = errors.New("department name cannot be empty")
	ErrEmptyDescription = errors.New("department description cannot be empty")
)

// Department is a simple named entity employees reference by id. Name
// uniqueness is enforced by the persistence boundary.
type Department struct {
	id          uuid.UUID
	name        string
	description string
	isActive    bool
	createdAt   time.Time
	updatedAt   *time.Time
}

func NewDepartment(now time.Time, name, description string) (*Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}

	return &Department{
		id:          uuid.New(),
		name:        name,
		description: description,
		isActive:    true,
		createdAt:   now,
	}, nil
}

func ReconstructDepartment(
	id uuid.UUID,
	name, description string,
	isActive bool,
	createdAt time.Time,
	updatedAt *time.Time,
) *Department {
	return &Department{
		id:          id,
		name:        name,
		description: description,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (d *Department) Update(now time.Time, name, description string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return ErrEmptyDescription
	}

	d.name = name
	d.description = description
	d.touch(now)
	return nil
}

func (d *Department) Activate(now time.Time) {
	d.isActive = true
	d.touch(now)
}

func (d *Department) Deactivate(now time.Time) {
	d.isActive = false
	d.touch(now)
}

func (d *Department) touch(now time.Time) {
	t := now
	d.updatedAt = &t
}

func (d *Department) ID() uuid.UUID         { return d.id }
func (d *Department) Name() string          { return d.name }
func (d *Department) Description() string   { return d.description }
func (d *Department) IsActive() bool        { return d.isActive }
func (d *Department) CreatedAt() time.Time  { return d.createdAt }
func (d *Department) UpdatedAt() *time.Time { return d.updatedAt }
