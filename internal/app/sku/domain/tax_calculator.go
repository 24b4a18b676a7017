package domain

// TaxBreakdown is the tax derived for one amount.
type TaxBreakdown struct {
	TaxAmount   Money
	TaxedAmount Money
}

// TaxCalculator derives tax fields for a price. Rates are assumed pre-validated
// to lie in [0,100]; the resolver rejects anything else before calling it.
type TaxCalculator interface {
	ComputeTax(amount Money, taxRatePercent *float64) TaxBreakdown
}

// PercentTaxCalculator applies an ad-valorem percentage with half-up rounding to cents.
type PercentTaxCalculator struct{}

// NewPercentTaxCalculator creates a new PercentTaxCalculator.
func NewPercentTaxCalculator() *PercentTaxCalculator {
	return &PercentTaxCalculator{}
}

// ComputeTax returns the tax amount and the taxed total.
// Formula: tax = round(amount * rate / 100, 2); taxed = round(amount + tax, 2)
func (c *PercentTaxCalculator) ComputeTax(amount Money, taxRatePercent *float64) TaxBreakdown {
	if taxRatePercent == nil {
		return TaxBreakdown{TaxAmount: Zero(), TaxedAmount: amount}
	}

	tax := amount.MulPercent(*taxRatePercent).RoundHalfUp(MoneyScale)
	return TaxBreakdown{
		TaxAmount:   tax,
		TaxedAmount: amount.Add(tax).RoundHalfUp(MoneyScale),
	}
}
