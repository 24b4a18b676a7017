package resolve_price

import (
	"context"
	"errors"
	"time"

	"github.com/light-bringer/procat-variants/internal/app/sku/contracts"
	"github.com/light-bringer/procat-variants/internal/app/sku/domain"
	"github.com/light-bringer/procat-variants/internal/pkg/logger"
	"github.com/light-bringer/procat-variants/internal/pkg/metrics"
)

// Request identifies the SKU, price type and instant to resolve.
type Request struct {
	SkuID string
	Type  domain.PriceType
	// AsOf zero means now.
	AsOf time.Time
}

// Query handles the effective price query.
type Query struct {
	skus     contracts.SkuRepository
	prices   contracts.PriceRecordSource
	resolver *domain.PriceResolver
	log      *logger.Logger
	metrics  *metrics.CatalogMetrics
}

// NewQuery creates a new resolve price query.
func NewQuery(
	skus contracts.SkuRepository,
	prices contracts.PriceRecordSource,
	resolver *domain.PriceResolver,
	log *logger.Logger,
	metrics *metrics.CatalogMetrics,
) *Query {
	if log == nil {
		log = logger.Nop()
	}
	return &Query{
		skus:     skus,
		prices:   prices,
		resolver: resolver,
		log:      log,
		metrics:  metrics,
	}
}

// Execute returns one quote per currency that has a valid record at AsOf.
// A SKU without applicable records gets an empty quote, not an error.
func (q *Query) Execute(ctx context.Context, req *Request) (*domain.CompositeQuote, error) {
	priceType, err := domain.ParsePriceType(string(req.Type))
	if err != nil {
		return nil, err
	}

	exists, err := q.skus.Exists(ctx, req.SkuID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrSkuNotFound
	}

	records, err := q.prices.LoadPriceRecords(ctx, req.SkuID, priceType)
	if err != nil {
		q.metrics.IncResolution(priceType.String(), metrics.OutcomeError)
		return nil, err
	}

	quote, err := q.resolver.Resolve(priceType, records, req.AsOf)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRecord) {
			q.metrics.IncResolution(priceType.String(), metrics.OutcomeInvalid)
			q.log.Error(q.log.WithField(ctx, "sku_id", req.SkuID), "price.invalid_record", err)
		} else {
			q.metrics.IncResolution(priceType.String(), metrics.OutcomeError)
		}
		return nil, err
	}

	for _, currency := range quote.Overlaps {
		q.metrics.IncOverlap(priceType.String(), currency)
		q.log.Warn(q.log.WithFields(ctx, map[string]any{
			"sku_id":     req.SkuID,
			"price_type": priceType.String(),
			"currency":   currency,
			"as_of":      quote.AsOf,
		}), "price.overlap")
	}

	outcome := metrics.OutcomeQuoted
	if quote.IsEmpty() {
		outcome = metrics.OutcomeEmpty
	}
	q.metrics.IncResolution(priceType.String(), outcome)

	return quote, nil
}
