package domain

import (
	"errors"
	"fmt"
)

// Domain errors as sentinel values
var (
	// Lookup errors
	ErrNotFound    = errors.New("not found")
	ErrSpuNotFound = fmt.Errorf("spu %w", ErrNotFound)
	ErrSkuNotFound = fmt.Errorf("sku %w", ErrNotFound)

	// Variant identity errors
	ErrInvalidCombination = errors.New("invalid attribute combination")
	ErrDuplicateVariant   = errors.New("attribute combination already used by another sku")

	// Price record errors
	ErrInvalidRecord    = errors.New("invalid price record")
	ErrNoEffectivePrice = errors.New("no effective price")
	ErrInvalidPriceType = errors.New("unknown price type")

	// Catalog errors
	ErrInvalidSpuName  = errors.New("spu name cannot be empty")
	ErrInvalidCategory = errors.New("spu category cannot be empty")
	ErrEmptySkuCode    = errors.New("sku code cannot be empty")

	// Concurrency errors
	ErrConcurrentModification = errors.New("sku was modified concurrently")
)
