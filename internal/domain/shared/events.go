package shared

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is an immutable fact recorded by an aggregate. Aggregates queue
// events during mutation; the queue is drained only after a successful save,
// so a failed save keeps the original events for the retry.
type DomainEvent interface {
	EventName() string
	AggregateID() uuid.UUID
	OccurredOn() time.Time
}
