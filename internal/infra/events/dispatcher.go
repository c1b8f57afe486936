package events

import (
	"context"
	"log/slog"

	domain "employee-registry/internal/domain/shared"
	"employee-registry/internal/usecase/shared"
)

// SlogDispatcher records committed domain events to the structured log. A
// broker-backed dispatcher can replace it without touching the usecases.
type SlogDispatcher struct {
	logger *slog.Logger
}

func NewSlogDispatcher(logger *slog.Logger) shared.EventDispatcher {
	return &SlogDispatcher{logger: logger}
}

func (d *SlogDispatcher) Dispatch(ctx context.Context, events []domain.DomainEvent) {
	for _, event := range events {
		d.logger.InfoContext(ctx, "domain event",
			"event", event.EventName(),
			"aggregate_id", event.AggregateID().String(),
			"occurred_on", event.OccurredOn(),
		)
	}
}
