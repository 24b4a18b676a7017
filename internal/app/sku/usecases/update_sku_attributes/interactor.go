package update_sku_attributes

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/procat-variants/internal/app/sku/contracts"
	"github.com/light-bringer/procat-variants/internal/app/sku/domain"
	"github.com/light-bringer/procat-variants/internal/app/sku/domain/services"
	"github.com/light-bringer/procat-variants/internal/app/sku/usecases"
	"github.com/light-bringer/procat-variants/internal/models/m_sku"
	"github.com/light-bringer/procat-variants/internal/pkg/clock"
	"github.com/light-bringer/procat-variants/internal/pkg/committer"
	"github.com/light-bringer/procat-variants/internal/pkg/metrics"
)

const operation = "update_sku_attributes"

// Request contains the new combination of a SKU.
type Request struct {
	SkuID      string
	Attributes []domain.AttributeValuePair
	// ExpectedVersion, when set, must match the stored version.
	ExpectedVersion *int64
}

// Result reports the outcome of an edit.
type Result struct {
	Changed bool
	Version int64
}

// Interactor handles the edit SKU combination use case.
type Interactor struct {
	repo       contracts.SkuRepository
	outboxRepo contracts.OutboxRepository
	index      *services.VariantCombinationIndex
	committer  committer.Applier
	clock      clock.Clock
	metrics    *metrics.CatalogMetrics
}

// NewInteractor creates a new update SKU attributes interactor.
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

// Execute replaces the SKU's combination following the Golden Mutation Pattern.
// Submitting the current combination (in any order) is a no-op.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Result, error) {
	sku, err := i.repo.GetByID(ctx, req.SkuID)
	if err != nil {
		return nil, err
	}
	defer sku.ClearEvents()

	loadedVersion := sku.Version()
	if req.ExpectedVersion != nil && *req.ExpectedVersion != loadedVersion {
		return nil, fmt.Errorf("%w: expected version %d, found %d",
			domain.ErrConcurrentModification, *req.ExpectedVersion, loadedVersion)
	}

	changed, err := sku.SetAttributes(req.Attributes, i.clock.Now())
	if err != nil {
		return nil, err
	}
	if !changed {
		return &Result{Changed: false, Version: loadedVersion}, nil
	}

	unique, err := i.index.IsCombinationUnique(ctx, sku.SpuID(), req.Attributes, sku.ID())
	if err != nil {
		return nil, err
	}
	if !unique {
		i.metrics.IncDuplicate(operation, metrics.StagePrecheck)
		return nil, fmt.Errorf("%w: %s under spu %s", domain.ErrDuplicateVariant, sku.Key(), sku.SpuID())
	}

	plan := committer.NewPlan()
	plan.Add(i.repo.UpdateMut(sku))
	if err := usecases.AddOutboxEvents(plan, i.outboxRepo, sku.DomainEvents()...); err != nil {
		return nil, err
	}

	guard := committer.VersionGuard{
		Table:    m_sku.TableName,
		Key:      spanner.Key{sku.ID()},
		Expected: loadedVersion,
	}
	if err := i.committer.ApplyWithVersionCheck(ctx, guard, plan); err != nil {
		switch {
		case committer.IsVersionConflict(err):
			return nil, fmt.Errorf("%w: %v", domain.ErrConcurrentModification, err)
		case committer.IsAlreadyExists(err):
			i.metrics.IncDuplicate(operation, metrics.StageStorage)
			return nil, fmt.Errorf("%w: %s under spu %s", domain.ErrDuplicateVariant, sku.Key(), sku.SpuID())
		}
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &Result{Changed: true, Version: loadedVersion + 1}, nil
}
