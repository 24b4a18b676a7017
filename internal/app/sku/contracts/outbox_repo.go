package contracts

import (
	"encoding/json"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/procat-variants/internal/app/sku/domain"
)

// OutboxEvent is a domain event ready to be written next to the change that raised it.
type OutboxEvent struct {
	EventID     string
	EventType   string
	AggregateID string
	Payload     json.RawMessage
	Status      string
}

// OutboxRepository turns domain events into outbox rows.
type OutboxRepository interface {
	// EnrichEvent assigns an event ID and serializes the payload.
	EnrichEvent(event domain.DomainEvent) (*OutboxEvent, error)

	InsertMut(event *OutboxEvent) *spanner.Mutation
}
