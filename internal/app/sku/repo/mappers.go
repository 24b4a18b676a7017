package repo

import (
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/procat-variants/internal/app/sku/domain"
	"github.com/light-bringer/procat-variants/internal/models/m_sku"
	"github.com/light-bringer/procat-variants/internal/models/m_sku_price"
	"github.com/light-bringer/procat-variants/internal/models/m_spu"
)

func spuToData(spu *domain.Spu) *m_spu.Data {
	return &m_spu.Data{
		SpuID:     spu.ID,
		Name:      spu.Name,
		Category:  spu.Category,
		CreatedAt: spu.CreatedAt,
		UpdatedAt: spu.CreatedAt,
	}
}

func spuFromData(data *m_spu.Data) *domain.Spu {
	return &domain.Spu{
		ID:        data.SpuID,
		Name:      data.Name,
		Category:  data.Category,
		CreatedAt: data.CreatedAt,
	}
}

func skuToData(sku *domain.Sku) *m_sku.Data {
	key := sku.Key()
	return &m_sku.Data{
		SkuID:           sku.ID(),
		SpuID:           sku.SpuID(),
		SkuCode:         sku.Code(),
		AttributeNames:  key.Names(),
		AttributeValues: key.Values(),
		VariantKey:      key.String(),
		VariantHash:     key.Hash(),
		Version:         sku.Version(),
		CreatedAt:       sku.CreatedAt(),
		UpdatedAt:       sku.UpdatedAt(),
	}
}

func skuFromData(data *m_sku.Data) (*domain.Sku, error) {
	key, err := domain.VariantKeyFromColumns(data.AttributeNames, data.AttributeValues)
	if err != nil {
		return nil, fmt.Errorf("sku %s has corrupt attributes: %w", data.SkuID, err)
	}
	return domain.ReconstructSku(
		data.SkuID,
		data.SpuID,
		data.SkuCode,
		key,
		data.Version,
		data.CreatedAt,
		data.UpdatedAt,
	), nil
}

func combinationFromRow(row *m_sku.CombinationRow) (domain.SkuCombination, error) {
	key, err := domain.VariantKeyFromColumns(row.AttributeNames, row.AttributeValues)
	if err != nil {
		return domain.SkuCombination{}, fmt.Errorf("sku %s has corrupt attributes: %w", row.SkuID, err)
	}
	return domain.SkuCombination{SkuID: row.SkuID, Key: key}, nil
}

func priceToData(r *domain.PriceRecord) *m_sku_price.Data {
	data := &m_sku_price.Data{
		PriceID:   r.ID,
		SkuID:     r.SkuID,
		PriceType: r.Type.String(),
		Currency:  r.Currency,
	}
	data.Amount.Set(r.Amount.Rat())

	if r.TaxRatePercent != nil {
		data.TaxRatePercent = spanner.NullFloat64{Float64: *r.TaxRatePercent, Valid: true}
	}
	if r.Priority != nil {
		data.Priority = spanner.NullInt64{Int64: *r.Priority, Valid: true}
	}
	if r.EffectiveAt != nil {
		data.EffectiveAt = spanner.NullTime{Time: *r.EffectiveAt, Valid: true}
	}
	if r.ExpiresAt != nil {
		data.ExpiresAt = spanner.NullTime{Time: *r.ExpiresAt, Valid: true}
	}
	if r.IsDefault != nil {
		data.IsDefault = spanner.NullBool{Bool: *r.IsDefault, Valid: true}
	}
	if r.MinBuyQuantity != nil {
		data.MinBuyQuantity = spanner.NullInt64{Int64: *r.MinBuyQuantity, Valid: true}
	}
	if r.Refundable != nil {
		data.Refundable = spanner.NullBool{Bool: *r.Refundable, Valid: true}
	}
	return data
}

// priceFromData maps a stored row back to a record without validating it;
// the resolver decides what an invalid record means.
func priceFromData(data *m_sku_price.Data) (domain.PriceRecord, error) {
	amount, err := domain.NewMoneyFromRat(&data.Amount)
	if err != nil {
		return domain.PriceRecord{}, fmt.Errorf("price %s has unreadable amount: %w", data.PriceID, err)
	}

	r := domain.PriceRecord{
		ID:       data.PriceID,
		SkuID:    data.SkuID,
		Type:     domain.PriceType(data.PriceType),
		Currency: data.Currency,
		Amount:   amount,
	}
	if data.TaxRatePercent.Valid {
		v := data.TaxRatePercent.Float64
		r.TaxRatePercent = &v
	}
	if data.Priority.Valid {
		v := data.Priority.Int64
		r.Priority = &v
	}
	if data.EffectiveAt.Valid {
		v := data.EffectiveAt.Time
		r.EffectiveAt = &v
	}
	if data.ExpiresAt.Valid {
		v := data.ExpiresAt.Time
		r.ExpiresAt = &v
	}
	if data.IsDefault.Valid {
		v := data.IsDefault.Bool
		r.IsDefault = &v
	}
	if data.MinBuyQuantity.Valid {
		v := data.MinBuyQuantity.Int64
		r.MinBuyQuantity = &v
	}
	if data.Refundable.Valid {
		v := data.Refundable.Bool
		r.Refundable = &v
	}
	return r, nil
}
