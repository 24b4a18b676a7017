package m_spu

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the spus table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting an SPU.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(TableName, Columns, []interface{}{
		data.SpuID,
		data.Name,
		data.Category,
		data.CreatedAt,
		data.UpdatedAt,
	})
}
