package m_sku_price

// Field name constants for the sku_prices table.
const (
	TableName = "sku_prices"

	// BySkuTypeIndex serves the resolver's (sku_id, price_type) lookups.
	BySkuTypeIndex = "sku_prices_by_sku_type"

	PriceID        = "price_id"
	SkuID          = "sku_id"
	PriceType      = "price_type"
	Currency       = "currency"
	Amount         = "amount"
	TaxRatePercent = "tax_rate_percent"
	Priority       = "priority"
	EffectiveAt    = "effective_at"
	ExpiresAt      = "expires_at"
	IsDefault      = "is_default"
	MinBuyQuantity = "min_buy_quantity"
	Refundable     = "refundable"
	CreatedAt      = "created_at"
)

// Columns lists every column in read order.
var Columns = []string{
	PriceID,
	SkuID,
	PriceType,
	Currency,
	Amount,
	TaxRatePercent,
	Priority,
	EffectiveAt,
	ExpiresAt,
	IsDefault,
	MinBuyQuantity,
	Refundable,
	CreatedAt,
}
