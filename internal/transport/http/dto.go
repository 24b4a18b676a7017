package http

import (
	"time"

	"github.com/light-bringer/procat-variants/internal/app/sku/domain"
)

type attributeDTO struct {
	Name  string `json:"name" validate:"required"`
	Value string `json:"value"`
}

func toPairs(in []attributeDTO) []domain.AttributeValuePair {
	out := make([]domain.AttributeValuePair, 0, len(in))
	for _, a := range in {
		out = append(out, domain.AttributeValuePair{Name: a.Name, Value: a.Value})
	}
	return out
}

type createSpuRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Category string `json:"category" validate:"required,max=100"`
}

type createSkuRequest struct {
	Code       string         `json:"code" validate:"required,max=100"`
	Attributes []attributeDTO `json:"attributes" validate:"required,dive"`
}

type combinationRequest struct {
	Attributes   []attributeDTO `json:"attributes" validate:"required,dive"`
	ExcludeSkuID string         `json:"exclude_sku_id"`
}

type updateAttributesRequest struct {
	Attributes []attributeDTO `json:"attributes" validate:"required,dive"`
	Version    *int64         `json:"version" validate:"omitempty,min=1"`
}

type addPriceRequest struct {
	Type           string        `json:"type" validate:"required"`
	Currency       string        `json:"currency" validate:"required,len=3"`
	Amount         *domain.Money `json:"amount" validate:"required"`
	TaxRatePercent *float64      `json:"tax_rate_percent" validate:"omitempty,gte=0,lte=100"`
	Priority       *int64        `json:"priority"`
	EffectiveAt    *time.Time    `json:"effective_at"`
	ExpiresAt      *time.Time    `json:"expires_at"`
	IsDefault      *bool         `json:"is_default"`
	MinBuyQuantity *int64        `json:"min_buy_quantity" validate:"omitempty,gte=0"`
	Refundable     *bool         `json:"refundable"`
}

type idResponse struct {
	ID string `json:"id"`
}

type lookupResponse struct {
	SkuID string `json:"sku_id"`
}

type availabilityResponse struct {
	Available bool `json:"available"`
}

type updateAttributesResponse struct {
	Changed bool  `json:"changed"`
	Version int64 `json:"version"`
}

type quoteDTO struct {
	Currency       string       `json:"currency"`
	Amount         domain.Money `json:"amount"`
	TaxRatePercent *float64     `json:"tax_rate_percent,omitempty"`
	TaxAmount      domain.Money `json:"tax_amount"`
	TaxedAmount    domain.Money `json:"taxed_amount"`
	SourceRecordID string       `json:"source_record_id"`
	EffectiveAt    *time.Time   `json:"effective_at,omitempty"`
	ExpiresAt      *time.Time   `json:"expires_at,omitempty"`
	Window         string       `json:"window,omitempty"`
	IsDefault      bool         `json:"is_default"`
	MinBuyQuantity *int64       `json:"min_buy_quantity,omitempty"`
	Refundable     *bool        `json:"refundable,omitempty"`
}

type compositeQuoteResponse struct {
	Type     string     `json:"type"`
	AsOf     time.Time  `json:"as_of"`
	Quotes   []quoteDTO `json:"quotes"`
	Overlaps []string   `json:"overlaps,omitempty"`
}

func toQuoteResponse(q *domain.CompositeQuote) compositeQuoteResponse {
	resp := compositeQuoteResponse{
		Type:     q.Type.String(),
		AsOf:     q.AsOf,
		Quotes:   make([]quoteDTO, 0, len(q.Quotes)),
		Overlaps: q.Overlaps,
	}
	for _, quote := range q.Quotes {
		resp.Quotes = append(resp.Quotes, quoteDTO{
			Currency:       quote.Currency,
			Amount:         quote.Amount,
			TaxRatePercent: quote.TaxRatePercent,
			TaxAmount:      quote.TaxAmount,
			TaxedAmount:    quote.TaxedAmount,
			SourceRecordID: quote.SourceRecordID,
			EffectiveAt:    quote.EffectiveAt,
			ExpiresAt:      quote.ExpiresAt,
			Window:         quote.Window,
			IsDefault:      quote.IsDefault,
			MinBuyQuantity: quote.MinBuyQuantity,
			Refundable:     quote.Refundable,
		})
	}
	return resp
}
