package m_sku

import (
	"sort"

	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the skus table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a SKU.
// A plain insert is used so both a reused primary key and a taken
// (spu_id, variant_hash) surface as AlreadyExists on commit.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(TableName, Columns, []interface{}{
		data.SkuID,
		data.SpuID,
		data.SkuCode,
		data.AttributeNames,
		data.AttributeValues,
		data.VariantKey,
		data.VariantHash,
		data.Version,
		data.CreatedAt,
		data.UpdatedAt,
	})
}

// UpdateMut creates a Spanner mutation for updating specific SKU fields.
// Columns are emitted in sorted order so identical updates build identical mutations.
func (m *Model) UpdateMut(skuID string, updates map[string]interface{}) *spanner.Mutation {
	if len(updates) == 0 {
		return nil
	}

	keys := make([]string, 0, len(updates))
	for col := range updates {
		keys = append(keys, col)
	}
	sort.Strings(keys)

	columns := make([]string, 0, len(updates)+1)
	values := make([]interface{}, 0, len(updates)+1)

	columns = append(columns, SkuID)
	values = append(values, skuID)

	for _, col := range keys {
		columns = append(columns, col)
		values = append(values, updates[col])
	}

	return spanner.Update(TableName, columns, values)
}
