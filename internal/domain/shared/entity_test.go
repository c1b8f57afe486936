//go:build unit

package shared_test

import (
	"testing"

	"employee-registry/internal/domain/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type employeeStub struct{ id uuid.UUID }

func (s employeeStub) ID() uuid.UUID { return s.id }

type departmentStub struct{ id uuid.UUID }

func (s departmentStub) ID() uuid.UUID { return s.id }

func TestSameIdentity(t *testing.T) {
	id := uuid.New()

	t.Run("same kind and id are equal", func(t *testing.T) {
		assert.True(t, shared.SameIdentity(employeeStub{id}, employeeStub{id}))
	})

	t.Run("different ids are not equal", func(t *testing.T) {
		assert.False(t, shared.SameIdentity(employeeStub{uuid.New()}, employeeStub{uuid.New()}))
	})

	t.Run("different kinds with same id are not equal", func(t *testing.T) {
		assert.False(t, shared.SameIdentity(employeeStub{id}, departmentStub{id}))
	})

	t.Run("transient entities are never equal", func(t *testing.T) {
		assert.False(t, shared.SameIdentity(employeeStub{uuid.Nil}, employeeStub{uuid.Nil}))
		assert.False(t, shared.SameIdentity(employeeStub{uuid.Nil}, employeeStub{id}))
	})

	t.Run("nil entities are never equal", func(t *testing.T) {
		assert.False(t, shared.SameIdentity(nil, employeeStub{id}))
		assert.False(t, shared.SameIdentity(nil, nil))
	})
}
