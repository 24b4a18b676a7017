package m_sku

import "time"

// Data represents the database model for the skus table.
// Attribute pairs are stored as two parallel arrays sorted by name.
type Data struct {
	SkuID           string    `spanner:"sku_id"`
	SpuID           string    `spanner:"spu_id"`
	SkuCode         string    `spanner:"sku_code"`
	AttributeNames  []string  `spanner:"attribute_names"`
	AttributeValues []string  `spanner:"attribute_values"`
	VariantKey      string    `spanner:"variant_key"`
	VariantHash     string    `spanner:"variant_hash"`
	Version         int64     `spanner:"version"`
	CreatedAt       time.Time `spanner:"created_at"`
	UpdatedAt       time.Time `spanner:"updated_at"`
}

// CombinationRow is the narrow projection read when indexing an SPU's variants.
type CombinationRow struct {
	SkuID           string   `spanner:"sku_id"`
	AttributeNames  []string `spanner:"attribute_names"`
	AttributeValues []string `spanner:"attribute_values"`
}
