package m_sku_price

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the sku_prices table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a price record.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(TableName, Columns, []interface{}{
		data.PriceID,
		data.SkuID,
		data.PriceType,
		data.Currency,
		&data.Amount,
		data.TaxRatePercent,
		data.Priority,
		data.EffectiveAt,
		data.ExpiresAt,
		data.IsDefault,
		data.MinBuyQuantity,
		data.Refundable,
		data.CreatedAt,
	})
}
