package m_spu

// Field name constants for the spus table.
const (
	TableName = "spus"

	SpuID     = "spu_id"
	Name      = "name"
	Category  = "category"
	CreatedAt = "created_at"
	UpdatedAt = "updated_at"
)

// Columns lists every column in read order.
var Columns = []string{SpuID, Name, Category, CreatedAt, UpdatedAt}
