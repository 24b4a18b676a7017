package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// PriceType classifies a price record. Resolution always runs within one type.
type PriceType string

const (
	PriceTypeSale     PriceType = "SALE"
	PriceTypeOriginal PriceType = "ORIGINAL"
	PriceTypeMember   PriceType = "MEMBER"
	PriceTypeCost     PriceType = "COST"
)

var knownPriceTypes = []PriceType{
	PriceTypeSale,
	PriceTypeOriginal,
	PriceTypeMember,
	PriceTypeCost,
}

// ParsePriceType converts a raw value (case-insensitive) into a PriceType.
func ParsePriceType(raw string) (PriceType, error) {
	value := PriceType(strings.ToUpper(strings.TrimSpace(raw)))
	for _, candidate := range knownPriceTypes {
		if candidate == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPriceType, raw)
}

// String implements fmt.Stringer.
func (t PriceType) String() string { return string(t) }

// PriceRecord is one stored price of a SKU. The resolver only reads records.
type PriceRecord struct {
	ID             string
	SkuID          string
	Type           PriceType
	Currency       string
	Amount         Money
	TaxRatePercent *float64
	Priority       *int64
	EffectiveAt    *time.Time
	ExpiresAt      *time.Time
	IsDefault      *bool
	MinBuyQuantity *int64
	Refundable     *bool
}

// Validate checks the record invariants. Every failure wraps ErrInvalidRecord.
func (r PriceRecord) Validate() error {
	if r.Currency == "" {
		return fmt.Errorf("%w: record %s has no currency", ErrInvalidRecord, r.ID)
	}
	if r.Amount.IsNegative() {
		return fmt.Errorf("%w: record %s has negative amount %s", ErrInvalidRecord, r.ID, r.Amount.Decimal().String())
	}
	if !r.Amount.HasAtMostScale(MoneyScale) {
		return fmt.Errorf("%w: record %s amount %s has more than %d fractional digits", ErrInvalidRecord, r.ID, r.Amount.Decimal().String(), MoneyScale)
	}
	if r.TaxRatePercent != nil && (math.IsNaN(*r.TaxRatePercent) || *r.TaxRatePercent < 0 || *r.TaxRatePercent > 100) {
		return fmt.Errorf("%w: record %s tax rate %v outside [0,100]", ErrInvalidRecord, r.ID, *r.TaxRatePercent)
	}
	if r.EffectiveAt != nil && r.ExpiresAt != nil && !r.ExpiresAt.After(*r.EffectiveAt) {
		return fmt.Errorf("%w: record %s expires at or before it becomes effective", ErrInvalidRecord, r.ID)
	}
	if r.MinBuyQuantity != nil && *r.MinBuyQuantity < 0 {
		return fmt.Errorf("%w: record %s has negative minimum buy quantity", ErrInvalidRecord, r.ID)
	}
	return nil
}

// IsValidAt reports whether t falls inside the validity window.
// Both bounds are inclusive; a missing bound leaves that side open.
func (r PriceRecord) IsValidAt(t time.Time) bool {
	if r.EffectiveAt != nil && t.Before(*r.EffectiveAt) {
		return false
	}
	if r.ExpiresAt != nil && t.After(*r.ExpiresAt) {
		return false
	}
	return true
}

// EffectivePriority returns the priority, defaulting to 0.
func (r PriceRecord) EffectivePriority() int64 {
	if r.Priority == nil {
		return 0
	}
	return *r.Priority
}
