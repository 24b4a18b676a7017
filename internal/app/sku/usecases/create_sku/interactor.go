package create_sku

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/light-bringer/procat-variants/internal/app/sku/contracts"
	"github.com/light-bringer/procat-variants/internal/app/sku/domain"
	"github.com/light-bringer/procat-variants/internal/app/sku/domain/services"
	"github.com/light-bringer/procat-variants/internal/app/sku/usecases"
	"github.com/light-bringer/procat-variants/internal/pkg/clock"
	"github.com/light-bringer/procat-variants/internal/pkg/committer"
	"github.com/light-bringer/procat-variants/internal/pkg/metrics"
)

const operation = "create_sku"

// Request contains the data needed to create a SKU under an SPU.
type Request struct {
	SpuID      string
	Code       string
	Attributes []domain.AttributeValuePair
}

// Interactor handles the create SKU use case.
type Interactor struct {
	repo       contracts.SkuRepository
	outboxRepo contracts.OutboxRepository
	index      *services.VariantCombinationIndex
	committer  committer.Applier
	clock      clock.Clock
	metrics    *metrics.CatalogMetrics
}

// NewInteractor creates a new create SKU interactor.
func NewInteractor(
	repo contracts.SkuRepository,
	outboxRepo contracts.OutboxRepository,
	index *services.VariantCombinationIndex,
	committer committer.Applier,
	clock clock.Clock,
	metrics *metrics.CatalogMetrics,
) *Interactor {
	return &Interactor{
		repo:       repo,
		outboxRepo: outboxRepo,
		index:      index,
		committer:  committer,
		clock:      clock,
		metrics:    metrics,
	}
}

// Execute creates the SKU and returns its ID.
//
// The uniqueness check runs first so the common conflict gets a clean error,
// but only the unique index on (spu_id, variant_hash) can settle a race between
// two writers; its violation is reported as ErrDuplicateVariant too.
func (i *Interactor) Execute(ctx context.Context, req *Request) (string, error) {
	sku, err := domain.NewSku(uuid.New().String(), req.SpuID, req.Code, req.Attributes, i.clock.Now())
	if err != nil {
		return "", err
	}
	defer sku.ClearEvents()

	unique, err := i.index.IsCombinationUnique(ctx, req.SpuID, req.Attributes, "")
	if err != nil {
		return "", err
	}
	if !unique {
		i.metrics.IncDuplicate(operation, metrics.StagePrecheck)
		return "", fmt.Errorf("%w: %s under spu %s", domain.ErrDuplicateVariant, sku.Key(), req.SpuID)
	}

	plan := committer.NewPlan()
	plan.Add(i.repo.InsertMut(sku))
	if err := usecases.AddOutboxEvents(plan, i.outboxRepo, sku.DomainEvents()...); err != nil {
		return "", err
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		if committer.IsAlreadyExists(err) {
			i.metrics.IncDuplicate(operation, metrics.StageStorage)
			return "", fmt.Errorf("%w: %s under spu %s", domain.ErrDuplicateVariant, sku.Key(), req.SpuID)
		}
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	return sku.ID(), nil
}
