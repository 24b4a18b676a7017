package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/procat-variants/internal/app/sku/contracts"
	"github.com/light-bringer/procat-variants/internal/app/sku/domain"
	"github.com/light-bringer/procat-variants/internal/models/m_spu"
)

// SpuRepo implements SpuRepository for Spanner.
type SpuRepo struct {
	client *spanner.Client
	model  *m_spu.Model
}

// NewSpuRepo creates a new SpuRepo.
func NewSpuRepo(client *spanner.Client) contracts.SpuRepository {
	return &SpuRepo{
		client: client,
		model:  m_spu.NewModel(),
	}
}

// InsertMut creates a mutation for inserting a new SPU.
func (r *SpuRepo) InsertMut(spu *domain.Spu) *spanner.Mutation {
	return r.model.InsertMut(spuToData(spu))
}

// GetByID retrieves an SPU by ID.
func (r *SpuRepo) GetByID(ctx context.Context, spuID string) (*domain.Spu, error) {
	row, err := r.client.Single().ReadRow(ctx, m_spu.TableName, spanner.Key{spuID}, m_spu.Columns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrSpuNotFound
		}
		return nil, fmt.Errorf("failed to read spu: %w", err)
	}

	var data m_spu.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse spu: %w", err)
	}
	return spuFromData(&data), nil
}

// Exists checks if an SPU exists.
func (r *SpuRepo) Exists(ctx context.Context, spuID string) (bool, error) {
	return rowExists(ctx, r.client.Single(), m_spu.TableName, spuID, m_spu.SpuID)
}

// rowReader is satisfied by single-use and read-only transactions.
type rowReader interface {
	ReadRow(ctx context.Context, table string, key spanner.Key, columns []string) (*spanner.Row, error)
}

func rowExists(ctx context.Context, rr rowReader, table, id, column string) (bool, error) {
	_, err := rr.ReadRow(ctx, table, spanner.Key{id}, []string{column})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to check %s existence: %w", table, err)
	}
	return true, nil
}
