package repo

import (
	"encoding/json"
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"

	"github.com/light-bringer/procat-variants/internal/app/sku/contracts"
	"github.com/light-bringer/procat-variants/internal/app/sku/domain"
	"github.com/light-bringer/procat-variants/internal/models/m_outbox"
)

// OutboxRepo implements OutboxRepository for Spanner.
type OutboxRepo struct {
	model *m_outbox.Model
}

// NewOutboxRepo creates a new OutboxRepo.
func NewOutboxRepo() contracts.OutboxRepository {
	return &OutboxRepo{model: m_outbox.NewModel()}
}

// InsertMut creates a mutation for inserting an outbox event.
func (r *OutboxRepo) InsertMut(event *contracts.OutboxEvent) *spanner.Mutation {
	return r.model.InsertMut(&m_outbox.Data{
		EventID:     event.EventID,
		EventType:   event.EventType,
		AggregateID: event.AggregateID,
		Payload:     spanner.NullJSON{Value: event.Payload, Valid: len(event.Payload) > 0},
		Status:      event.Status,
	})
}

// EnrichEvent serializes a domain event into a pending outbox event.
func (r *OutboxRepo) EnrichEvent(event domain.DomainEvent) (*contracts.OutboxEvent, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize %s event: %w", event.EventType(), err)
	}
	return &contracts.OutboxEvent{
		EventID:     uuid.New().String(),
		EventType:   event.EventType(),
		AggregateID: event.AggregateID(),
		Payload:     payload,
		Status:      m_outbox.StatusPending,
	}, nil
}
