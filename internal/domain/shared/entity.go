package shared

import (
	"reflect"

	"github.com/google/uuid"
)

// Entity is anything with a stable identifier. Identity equality lives here
// instead of on a mutable base struct: compare by identifier only.
type Entity interface {
	ID() uuid.UUID
}

// SameIdentity reports whether two entities are the same record.
// An entity with an unassigned identifier (uuid.Nil) is transient and never
// equal to anything, including another transient instance.
func SameIdentity(a, b Entity) bool {
	if a == nil || b == nil {
		return false
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if a.ID() == uuid.Nil || b.ID() == uuid.Nil {
		return false
	}
	return a.ID() == b.ID()
}
