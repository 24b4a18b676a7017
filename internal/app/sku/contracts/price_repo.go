package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/procat-variants/internal/app/sku/domain"
)

// PriceRecordRepository defines persistence for price records.
type PriceRecordRepository interface {
	// InsertMut creates a mutation for inserting a price record.
	InsertMut(record *domain.PriceRecord) *spanner.Mutation
}

// PriceRecordSource loads the stored price records of a SKU for resolution.
type PriceRecordSource interface {
	// LoadPriceRecords returns every record of priceType for skuID, in no
	// particular order. An unknown SKU yields an empty slice.
	LoadPriceRecords(ctx context.Context, skuID string, priceType domain.PriceType) ([]domain.PriceRecord, error)
}
