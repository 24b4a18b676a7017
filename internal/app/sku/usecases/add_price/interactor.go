package add_price

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/light-bringer/procat-variants/internal/app/sku/contracts"
	"github.com/light-bringer/procat-variants/internal/app/sku/domain"
	"github.com/light-bringer/procat-variants/internal/app/sku/usecases"
	"github.com/light-bringer/procat-variants/internal/pkg/clock"
	"github.com/light-bringer/procat-variants/internal/pkg/committer"
)

// Request contains a new price record for a SKU.
type Request struct {
	SkuID          string
	Type           domain.PriceType
	Currency       string
	Amount         domain.Money
	TaxRatePercent *float64
	Priority       *int64
	EffectiveAt    *time.Time
	ExpiresAt      *time.Time
	IsDefault      *bool
	MinBuyQuantity *int64
	Refundable     *bool
}

// Interactor handles the add price use case.
type Interactor struct {
	skuRepo    contracts.SkuRepository
	priceRepo  contracts.PriceRecordRepository
	outboxRepo contracts.OutboxRepository
	committer  committer.Applier
	clock      clock.Clock
}

// NewInteractor creates a new add price interactor.
func NewInteractor(
	skuRepo contracts.SkuRepository,
	priceRepo contracts.PriceRecordRepository,
	outboxRepo contracts.OutboxRepository,
	committer committer.Applier,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		skuRepo:    skuRepo,
		priceRepo:  priceRepo,
		outboxRepo: outboxRepo,
		committer:  committer,
		clock:      clock,
	}
}

// Execute validates and stores a price record, returning its ID.
// Records are immutable once stored; a price change is a new record.
func (i *Interactor) Execute(ctx context.Context, req *Request) (string, error) {
	record := &domain.PriceRecord{
		ID:             uuid.New().String(),
		SkuID:          req.SkuID,
		Type:           req.Type,
		Currency:       strings.ToUpper(strings.TrimSpace(req.Currency)),
		Amount:         req.Amount,
		TaxRatePercent: req.TaxRatePercent,
		Priority:       req.Priority,
		EffectiveAt:    req.EffectiveAt,
		ExpiresAt:      req.ExpiresAt,
		IsDefault:      req.IsDefault,
		MinBuyQuantity: req.MinBuyQuantity,
		Refundable:     req.Refundable,
	}
	if _, err := domain.ParsePriceType(string(record.Type)); err != nil {
		return "", err
	}
	if err := record.Validate(); err != nil {
		return "", err
	}

	exists, err := i.skuRepo.Exists(ctx, req.SkuID)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", domain.ErrSkuNotFound
	}

	plan := committer.NewPlan()
	plan.Add(i.priceRepo.InsertMut(record))

	added := &domain.SkuPriceAddedEvent{
		SkuID:       record.SkuID,
		PriceID:     record.ID,
		Type:        record.Type,
		Currency:    record.Currency,
		Amount:      record.Amount,
		EffectiveAt: record.EffectiveAt,
		ExpiresAt:   record.ExpiresAt,
		AddedAt:     i.clock.Now(),
	}
	if err := usecases.AddOutboxEvents(plan, i.outboxRepo, added); err != nil {
		return "", err
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	return record.ID, nil
}
