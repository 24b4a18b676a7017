package find_sku

import (
	"context"

	"github.com/light-bringer/procat-variants/internal/app/sku/domain"
	"github.com/light-bringer/procat-variants/internal/app/sku/domain/services"
)

// Request contains the SPU and the exact combination to look up.
type Request struct {
	SpuID      string
	Attributes []domain.AttributeValuePair
}

// Query handles the find SKU by combination query.
type Query struct {
	index *services.VariantCombinationIndex
}

// NewQuery creates a new find SKU query.
func NewQuery(index *services.VariantCombinationIndex) *Query {
	return &Query{index: index}
}

// Execute returns the ID of the SKU whose combination equals the request's,
// or domain.ErrSkuNotFound.
func (q *Query) Execute(ctx context.Context, req *Request) (string, error) {
	return q.index.FindSkuByCombination(ctx, req.SpuID, req.Attributes)
}
