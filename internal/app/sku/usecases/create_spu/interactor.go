package create_spu

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/light-bringer/procat-variants/internal/app/sku/contracts"
	"github.com/light-bringer/procat-variants/internal/app/sku/domain"
	"github.com/light-bringer/procat-variants/internal/app/sku/usecases"
	"github.com/light-bringer/procat-variants/internal/pkg/clock"
	"github.com/light-bringer/procat-variants/internal/pkg/committer"
)

// Request contains the data needed to register an SPU.
type Request struct {
	Name     string
	Category string
}

// Interactor handles the create SPU use case.
type Interactor struct {
	repo       contracts.SpuRepository
	outboxRepo contracts.OutboxRepository
	committer  committer.Applier
	clock      clock.Clock
}

// NewInteractor creates a new create SPU interactor.
func NewInteractor(
	repo contracts.SpuRepository,
	outboxRepo contracts.OutboxRepository,
	committer committer.Applier,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		repo:       repo,
		outboxRepo: outboxRepo,
		committer:  committer,
		clock:      clock,
	}
}

// Execute registers a new SPU and returns its ID.
func (i *Interactor) Execute(ctx context.Context, req *Request) (string, error) {
	now := i.clock.Now()
	spu, err := domain.NewSpu(uuid.New().String(), req.Name, req.Category, now)
	if err != nil {
		return "", err
	}

	plan := committer.NewPlan()
	plan.Add(i.repo.InsertMut(spu))

	created := &domain.SpuCreatedEvent{
		SpuID:     spu.ID,
		Name:      spu.Name,
		Category:  spu.Category,
		CreatedAt: now,
	}
	if err := usecases.AddOutboxEvents(plan, i.outboxRepo, created); err != nil {
		return "", err
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	return spu.ID, nil
}
