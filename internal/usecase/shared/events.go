package shared

import (
	"context"

	domain "employee-registry/internal/domain/shared"
)

// EventDispatcher receives the events drained from an aggregate after its
// transaction committed. Dispatch failures must not fail the already-saved
// operation.
type EventDispatcher interface {
	Dispatch(ctx context.Context, events []domain.DomainEvent)
}
