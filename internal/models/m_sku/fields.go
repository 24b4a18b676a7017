package m_sku

// Field name constants for the skus table.
const (
	TableName = "skus"

	// UniqueVariantIndex enforces one SKU per (spu_id, variant_hash).
	UniqueVariantIndex = "skus_by_spu_variant"

	SkuID           = "sku_id"
	SpuID           = "spu_id"
	SkuCode         = "sku_code"
	AttributeNames  = "attribute_names"
	AttributeValues = "attribute_values"
	VariantKey      = "variant_key"
	VariantHash     = "variant_hash"
	Version         = "version"
	CreatedAt       = "created_at"
	UpdatedAt       = "updated_at"
)

// Columns lists every column in read order.
var Columns = []string{
	SkuID,
	SpuID,
	SkuCode,
	AttributeNames,
	AttributeValues,
	VariantKey,
	VariantHash,
	Version,
	CreatedAt,
	UpdatedAt,
}

// CombinationColumns is the projection needed to rebuild variant identities.
var CombinationColumns = []string{SkuID, AttributeNames, AttributeValues}
