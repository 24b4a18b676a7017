package m_spu

import "time"

// Data represents the database model for the spus table.
type Data struct {
	SpuID     string    `spanner:"spu_id"`
	Name      string    `spanner:"name"`
	Category  string    `spanner:"category"`
	CreatedAt time.Time `spanner:"created_at"`
	UpdatedAt time.Time `spanner:"updated_at"`
}
