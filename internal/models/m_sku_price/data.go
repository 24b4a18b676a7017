package m_sku_price

import (
	"math/big"
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the sku_prices table.
type Data struct {
	PriceID        string              `spanner:"price_id"`
	SkuID          string              `spanner:"sku_id"`
	PriceType      string              `spanner:"price_type"`
	Currency       string              `spanner:"currency"`
	Amount         big.Rat             `spanner:"amount"`
	TaxRatePercent spanner.NullFloat64 `spanner:"tax_rate_percent"`
	Priority       spanner.NullInt64   `spanner:"priority"`
	EffectiveAt    spanner.NullTime    `spanner:"effective_at"`
	ExpiresAt      spanner.NullTime    `spanner:"expires_at"`
	IsDefault      spanner.NullBool    `spanner:"is_default"`
	MinBuyQuantity spanner.NullInt64   `spanner:"min_buy_quantity"`
	Refundable     spanner.NullBool    `spanner:"refundable"`
	CreatedAt      time.Time           `spanner:"created_at"`
}
