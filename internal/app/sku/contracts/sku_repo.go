package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/procat-variants/internal/app/sku/domain"
)

// SpuRepository defines persistence for parent products.
type SpuRepository interface {
	InsertMut(spu *domain.Spu) *spanner.Mutation
	GetByID(ctx context.Context, spuID string) (*domain.Spu, error)
	Exists(ctx context.Context, spuID string) (bool, error)
}

// SkuRepository defines persistence for SKU aggregates.
// Repositories return mutations, they don't apply them (Golden Mutation Pattern).
type SkuRepository interface {
	// InsertMut creates a mutation for inserting a new SKU
	InsertMut(sku *domain.Sku) *spanner.Mutation

	// UpdateMut creates a mutation for the dirty fields of a SKU, or nil when clean.
	UpdateMut(sku *domain.Sku) *spanner.Mutation

	// GetByID retrieves a SKU, returning domain.ErrSkuNotFound when absent
	GetByID(ctx context.Context, skuID string) (*domain.Sku, error)

	// Exists checks if a SKU exists
	Exists(ctx context.Context, skuID string) (bool, error)
}

// CombinationSource provides the attribute combinations of every SKU under an SPU.
type CombinationSource interface {
	// LoadSkuCombinations returns domain.ErrSpuNotFound for an unknown SPU.
	LoadSkuCombinations(ctx context.Context, spuID string) ([]domain.SkuCombination, error)
}
