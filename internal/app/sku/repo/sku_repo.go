package repo

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/procat-variants/internal/app/sku/contracts"
	"github.com/light-bringer/procat-variants/internal/app/sku/domain"
	"github.com/light-bringer/procat-variants/internal/models/m_sku"
	"github.com/light-bringer/procat-variants/internal/models/m_spu"
	"github.com/light-bringer/procat-variants/internal/pkg/query"
)

// SkuRepo implements SkuRepository and CombinationSource for Spanner.
type SkuRepo struct {
	client *spanner.Client
	model  *m_sku.Model
}

var (
	_ contracts.SkuRepository     = (*SkuRepo)(nil)
	_ contracts.CombinationSource = (*SkuRepo)(nil)
)

// NewSkuRepo creates a new SkuRepo.
func NewSkuRepo(client *spanner.Client) *SkuRepo {
	return &SkuRepo{
		client: client,
		model:  m_sku.NewModel(),
	}
}

// InsertMut creates a mutation for inserting a new SKU.
func (r *SkuRepo) InsertMut(sku *domain.Sku) *spanner.Mutation {
	return r.model.InsertMut(skuToData(sku))
}

// UpdateMut creates a mutation for updating a SKU (only dirty fields).
// The version is bumped here; the commit must be guarded by the loaded version.
func (r *SkuRepo) UpdateMut(sku *domain.Sku) *spanner.Mutation {
	updates := skuUpdates(sku)
	if len(updates) == 0 {
		return nil
	}
	return r.model.UpdateMut(sku.ID(), updates)
}

func skuUpdates(sku *domain.Sku) map[string]interface{} {
	changes := sku.Changes()
	if !changes.HasChanges() {
		return nil
	}

	updates := make(map[string]interface{})
	if changes.Dirty(domain.FieldCode) {
		updates[m_sku.SkuCode] = sku.Code()
	}
	if changes.Dirty(domain.FieldAttributes) {
		key := sku.Key()
		updates[m_sku.AttributeNames] = key.Names()
		updates[m_sku.AttributeValues] = key.Values()
		updates[m_sku.VariantKey] = key.String()
		updates[m_sku.VariantHash] = key.Hash()
	}
	if len(updates) == 0 {
		return nil
	}

	updates[m_sku.UpdatedAt] = sku.UpdatedAt()
	updates[m_sku.Version] = sku.Version() + 1
	return updates
}

// GetByID retrieves a SKU by ID, reconstructing the domain aggregate.
func (r *SkuRepo) GetByID(ctx context.Context, skuID string) (*domain.Sku, error) {
	row, err := r.client.Single().ReadRow(ctx, m_sku.TableName, spanner.Key{skuID}, m_sku.Columns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrSkuNotFound
		}
		return nil, fmt.Errorf("failed to read sku: %w", err)
	}

	var data m_sku.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse sku: %w", err)
	}
	return skuFromData(&data)
}

// Exists checks if a SKU exists.
func (r *SkuRepo) Exists(ctx context.Context, skuID string) (bool, error) {
	return rowExists(ctx, r.client.Single(), m_sku.TableName, skuID, m_sku.SkuID)
}

// LoadSkuCombinations reads every SKU combination under an SPU from one snapshot.
// An SPU with no SKUs yields an empty slice; an unknown SPU yields ErrSpuNotFound.
func (r *SkuRepo) LoadSkuCombinations(ctx context.Context, spuID string) ([]domain.SkuCombination, error) {
	txn := r.client.ReadOnlyTransaction()
	defer txn.Close()

	exists, err := rowExists(ctx, txn, m_spu.TableName, spuID, m_spu.SpuID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrSpuNotFound
	}

	stmt := query.From(m_sku.TableName).
		Select(m_sku.CombinationColumns...).
		Where(query.Eq(m_sku.SpuID, spuID)).
		OrderBy(m_sku.SkuID, query.Asc).
		Build()

	iter := txn.Query(ctx, stmt)
	defer iter.Stop()

	combos := make([]domain.SkuCombination, 0)
	for {
		row, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to query sku combinations: %w", err)
		}

		var data m_sku.CombinationRow
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse sku combination: %w", err)
		}
		combo, err := combinationFromRow(&data)
		if err != nil {
			return nil, err
		}
		combos = append(combos, combo)
	}

	return combos, nil
}
