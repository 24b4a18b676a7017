package domain

import "sort"

// SkuCombination is a SKU together with the attribute combination it is defined by.
type SkuCombination struct {
	SkuID string
	Key   VariantKey
}

// VariantIndex is an in-memory view of every combination assigned under one SPU.
// It is built from a pre-fetched slice and never mutated afterwards, so it can be
// shared across goroutines.
type VariantIndex struct {
	spuID string
	byKey map[string][]string
}

// NewVariantIndex builds the index for an SPU.
func NewVariantIndex(spuID string, combinations []SkuCombination) *VariantIndex {
	idx := &VariantIndex{
		spuID: spuID,
		byKey: make(map[string][]string, len(combinations)),
	}
	for _, c := range combinations {
		if c.Key.IsZero() {
			continue
		}
		k := c.Key.String()
		idx.byKey[k] = append(idx.byKey[k], c.SkuID)
	}
	for k := range idx.byKey {
		sort.Strings(idx.byKey[k])
	}
	return idx
}

// SpuID returns the parent product this index describes.
func (idx *VariantIndex) SpuID() string { return idx.spuID }

// IsUnique reports whether no SKU other than excludeSkuID holds key.
// Pass an empty excludeSkuID when checking a SKU that does not exist yet.
func (idx *VariantIndex) IsUnique(key VariantKey, excludeSkuID string) bool {
	for _, skuID := range idx.byKey[key.String()] {
		if skuID != excludeSkuID {
			return false
		}
	}
	return true
}

// Find returns the SKU whose combination equals key exactly.
// If storage ever held more than one, the smallest SKU ID is returned.
func (idx *VariantIndex) Find(key VariantKey) (string, bool) {
	ids := idx.byKey[key.String()]
	if len(ids) == 0 {
		return "", false
	}
	return ids[0], true
}

// Collisions lists canonical keys shared by more than one SKU.
// A non-empty result means the storage uniqueness constraint was bypassed.
func (idx *VariantIndex) Collisions() []string {
	var out []string
	for k, ids := range idx.byKey {
		if len(ids) > 1 {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
