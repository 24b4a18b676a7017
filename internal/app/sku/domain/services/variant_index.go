package services

import (
	"context"
	"fmt"

	"github.com/light-bringer/procat-variants/internal/app/sku/contracts"
	"github.com/light-bringer/procat-variants/internal/app/sku/domain"
)

// VariantCombinationIndex answers identity questions about the SKUs of one SPU.
// It reads a fresh snapshot on every call and never caches; the unique index in
// storage stays the final guard against racing writers.
type VariantCombinationIndex struct {
	source contracts.CombinationSource
}

// NewVariantCombinationIndex creates a new VariantCombinationIndex.
func NewVariantCombinationIndex(source contracts.CombinationSource) *VariantCombinationIndex {
	return &VariantCombinationIndex{source: source}
}

// IsCombinationUnique reports whether no SKU of spuID other than excludeSkuID
// carries exactly the given combination. Pass an empty excludeSkuID when creating.
func (idx *VariantCombinationIndex) IsCombinationUnique(ctx context.Context, spuID string, pairs []domain.AttributeValuePair, excludeSkuID string) (bool, error) {
	key, err := domain.NewVariantKey(pairs)
	if err != nil {
		return false, err
	}
	index, err := idx.load(ctx, spuID)
	if err != nil {
		return false, err
	}
	return index.IsUnique(key, excludeSkuID), nil
}

// FindSkuByCombination returns the SKU whose combination equals pairs exactly.
// It returns domain.ErrSkuNotFound when none matches.
func (idx *VariantCombinationIndex) FindSkuByCombination(ctx context.Context, spuID string, pairs []domain.AttributeValuePair) (string, error) {
	key, err := domain.NewVariantKey(pairs)
	if err != nil {
		return "", err
	}
	index, err := idx.load(ctx, spuID)
	if err != nil {
		return "", err
	}
	skuID, ok := index.Find(key)
	if !ok {
		return "", fmt.Errorf("%w: no sku of spu %s has combination %s", domain.ErrSkuNotFound, spuID, key)
	}
	return skuID, nil
}

func (idx *VariantCombinationIndex) load(ctx context.Context, spuID string) (*domain.VariantIndex, error) {
	combos, err := idx.source.LoadSkuCombinations(ctx, spuID)
	if err != nil {
		return nil, err
	}
	return domain.NewVariantIndex(spuID, combos), nil
}
