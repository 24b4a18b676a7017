package repo

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/procat-variants/internal/app/sku/contracts"
	"github.com/light-bringer/procat-variants/internal/app/sku/domain"
	"github.com/light-bringer/procat-variants/internal/models/m_sku_price"
	"github.com/light-bringer/procat-variants/internal/pkg/query"
)

// PriceRepo implements PriceRecordRepository and PriceRecordSource for Spanner.
type PriceRepo struct {
	client *spanner.Client
	model  *m_sku_price.Model
}

var (
	_ contracts.PriceRecordRepository = (*PriceRepo)(nil)
	_ contracts.PriceRecordSource     = (*PriceRepo)(nil)
)

// NewPriceRepo creates a new PriceRepo.
func NewPriceRepo(client *spanner.Client) *PriceRepo {
	return &PriceRepo{
		client: client,
		model:  m_sku_price.NewModel(),
	}
}

// InsertMut creates a mutation for inserting a price record.
func (r *PriceRepo) InsertMut(record *domain.PriceRecord) *spanner.Mutation {
	return r.model.InsertMut(priceToData(record))
}

// LoadPriceRecords reads every record of one type for a SKU.
func (r *PriceRepo) LoadPriceRecords(ctx context.Context, skuID string, priceType domain.PriceType) ([]domain.PriceRecord, error) {
	stmt := query.From(m_sku_price.TableName).
		Select(m_sku_price.Columns...).
		Where(query.Eq(m_sku_price.SkuID, skuID)).
		Where(query.Eq(m_sku_price.PriceType, priceType.String())).
		OrderBy(m_sku_price.Currency, query.Asc).
		OrderBy(m_sku_price.PriceID, query.Asc).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	records := make([]domain.PriceRecord, 0)
	for {
		row, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to query price records: %w", err)
		}

		var data m_sku_price.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse price record: %w", err)
		}
		record, err := priceFromData(&data)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}
