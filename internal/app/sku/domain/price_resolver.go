package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/light-bringer/procat-variants/internal/pkg/clock"
)

// EffectivePriceQuote is the winning price of one currency, decorated with tax and window.
type EffectivePriceQuote struct {
	Currency       string
	Amount         Money
	TaxRatePercent *float64
	TaxAmount      Money
	TaxedAmount    Money
	SourceRecordID string
	EffectiveAt    *time.Time
	ExpiresAt      *time.Time
	Window         string
	IsDefault      bool
	MinBuyQuantity *int64
	Refundable     *bool
}

// CompositeQuote is the full price of a SKU at one instant: one quote per currency.
// Quotes are listed per currency; no cross-currency sum is computed here.
type CompositeQuote struct {
	Type   PriceType
	Quotes []EffectivePriceQuote
	AsOf   time.Time

	// Overlaps lists currencies where more than one record was valid at AsOf.
	// Resolution is still deterministic, but the data deserves attention.
	Overlaps []string
}

// IsEmpty reports whether no currency had a valid price.
func (q *CompositeQuote) IsEmpty() bool {
	return q == nil || len(q.Quotes) == 0
}

// QuoteFor returns the quote of a currency, if any.
func (q *CompositeQuote) QuoteFor(currency string) (EffectivePriceQuote, bool) {
	if q == nil {
		return EffectivePriceQuote{}, false
	}
	for _, quote := range q.Quotes {
		if quote.Currency == currency {
			return quote, true
		}
	}
	return EffectivePriceQuote{}, false
}

// Require returns the quote of a currency or ErrNoEffectivePrice.
// For callers (checkout) that cannot proceed without a price.
func (q *CompositeQuote) Require(currency string) (EffectivePriceQuote, error) {
	quote, ok := q.QuoteFor(currency)
	if !ok {
		return EffectivePriceQuote{}, fmt.Errorf("%w: currency %s", ErrNoEffectivePrice, currency)
	}
	return quote, nil
}

// PriceResolver picks the effective price of a SKU per currency.
//
// Within one currency the lowest pre-tax amount wins; ties go to the higher
// priority, then to the most recently activated record, then to the smallest
// record ID. Different currencies are listed side by side.
type PriceResolver struct {
	tax    TaxCalculator
	window DateRangeDescriber
	clock  clock.Clock
}

// NewPriceResolver creates a resolver with its collaborators injected.
func NewPriceResolver(tax TaxCalculator, window DateRangeDescriber, clk clock.Clock) *PriceResolver {
	return &PriceResolver{
		tax:    tax,
		window: window,
		clock:  clk,
	}
}

// Resolve computes the composite quote for records of priceType as of asOf.
// A zero asOf means now. Records of other types are ignored. Any invalid record
// of the requested type fails the whole resolution with ErrInvalidRecord.
func (pr *PriceResolver) Resolve(priceType PriceType, records []PriceRecord, asOf time.Time) (*CompositeQuote, error) {
	if asOf.IsZero() {
		asOf = pr.clock.Now()
	}

	groups := make(map[string][]PriceRecord)
	for _, r := range records {
		if r.Type != priceType {
			continue
		}
		if err := r.Validate(); err != nil {
			return nil, err
		}
		if !r.IsValidAt(asOf) {
			continue
		}
		groups[r.Currency] = append(groups[r.Currency], r)
	}

	quote := &CompositeQuote{
		Type:   priceType,
		Quotes: make([]EffectivePriceQuote, 0, len(groups)),
		AsOf:   asOf,
	}

	currencies := make([]string, 0, len(groups))
	for currency := range groups {
		currencies = append(currencies, currency)
	}
	sort.Strings(currencies)

	for _, currency := range currencies {
		group := groups[currency]
		if len(group) > 1 {
			quote.Overlaps = append(quote.Overlaps, currency)
		}
		quote.Quotes = append(quote.Quotes, pr.decorate(pickWinner(group)))
	}

	return quote, nil
}

// decorate derives the tax fields and the display window of a winning record.
func (pr *PriceResolver) decorate(r PriceRecord) EffectivePriceQuote {
	tax := pr.tax.ComputeTax(r.Amount, r.TaxRatePercent)

	q := EffectivePriceQuote{
		Currency:       r.Currency,
		Amount:         r.Amount,
		TaxRatePercent: r.TaxRatePercent,
		TaxAmount:      tax.TaxAmount,
		TaxedAmount:    tax.TaxedAmount,
		SourceRecordID: r.ID,
		EffectiveAt:    r.EffectiveAt,
		ExpiresAt:      r.ExpiresAt,
		MinBuyQuantity: r.MinBuyQuantity,
		Refundable:     r.Refundable,
	}
	if r.IsDefault != nil {
		q.IsDefault = *r.IsDefault
	}
	if r.EffectiveAt != nil || r.ExpiresAt != nil {
		q.Window = pr.window.Describe(r.EffectiveAt, r.ExpiresAt)
	}
	return q
}

// pickWinner reduces a non-empty currency group to its most favorable record.
func pickWinner(group []PriceRecord) PriceRecord {
	best := group[0]
	for _, candidate := range group[1:] {
		if morePreferred(candidate, best) {
			best = candidate
		}
	}
	return best
}

// morePreferred reports whether a beats b.
func morePreferred(a, b PriceRecord) bool {
	if c := a.Amount.Cmp(b.Amount); c != 0 {
		return c < 0
	}
	if pa, pb := a.EffectivePriority(), b.EffectivePriority(); pa != pb {
		return pa > pb
	}
	if c := compareActivation(a.EffectiveAt, b.EffectiveAt); c != 0 {
		return c > 0
	}
	return a.ID < b.ID
}

// compareActivation orders effective instants; an open start counts as the earliest.
func compareActivation(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return a.Compare(*b)
}
