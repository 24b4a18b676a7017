package check_combination

import (
	"context"

	"github.com/light-bringer/procat-variants/internal/app/sku/domain"
	"github.com/light-bringer/procat-variants/internal/app/sku/domain/services"
)

// Request contains the combination to test. ExcludeSkuID is the SKU being
// edited, if any.
type Request struct {
	SpuID        string
	Attributes   []domain.AttributeValuePair
	ExcludeSkuID string
}

// Query handles the combination availability query.
type Query struct {
	index *services.VariantCombinationIndex
}

// NewQuery creates a new check combination query.
func NewQuery(index *services.VariantCombinationIndex) *Query {
	return &Query{index: index}
}

// Execute reports whether the combination is free under the SPU.
// A true result is advisory; creation can still lose a race at commit time.
func (q *Query) Execute(ctx context.Context, req *Request) (bool, error) {
	return q.index.IsCombinationUnique(ctx, req.SpuID, req.Attributes, req.ExcludeSkuID)
}
