package builder

import (
	"time"

	"employee-registry/internal/domain/department"
)

type DepartmentBuilder struct {
	now         time.Time
	name        string
	description string
}

func NewDepartmentBuilder() *DepartmentBuilder {
	return &DepartmentBuilder{
		now:         time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		name:        "Tecnologia da Informação",
		description: "Infraestrutura tecnológica e desenvolvimento de sistemas",
	}
}

func (b *DepartmentBuilder) With(mutate func(*DepartmentBuilder)) *DepartmentBuilder {
	if mutate != nil {
		mutate(b)
	}
	return b
}

func (b *DepartmentBuilder) WithName(v string) *DepartmentBuilder {
	b.name = v
	return b
}

func (b *DepartmentBuilder) WithDescription(v string) *DepartmentBuilder {
	b.description = v
	return b
}

func (b *DepartmentBuilder) BuildDomain() (*department.Department, error) {
	return department.NewDepartment(b.now, b.name, b.description)
}
