// Package usecases holds the write side of the SKU catalog. Each usecase lives
// in its own package; this file carries the outbox step they share.
package usecases

import (
	"github.com/light-bringer/procat-variants/internal/app/sku/contracts"
	"github.com/light-bringer/procat-variants/internal/app/sku/domain"
	"github.com/light-bringer/procat-variants/internal/pkg/committer"
)

// AddOutboxEvents adds one outbox row per event to plan.
func AddOutboxEvents(plan *committer.CommitPlan, outbox contracts.OutboxRepository, events ...domain.DomainEvent) error {
	for _, event := range events {
		enriched, err := outbox.EnrichEvent(event)
		if err != nil {
			return err
		}
		plan.Add(outbox.InsertMut(enriched))
	}
	return nil
}
