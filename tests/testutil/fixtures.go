package testutil

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/procat-variants/internal/app/sku/domain"
	"github.com/light-bringer/procat-variants/internal/app/sku/repo"
	"github.com/light-bringer/procat-variants/internal/models/m_outbox"
	"github.com/light-bringer/procat-variants/internal/models/m_sku"
)

// CreateTestSpu creates a parent product directly in the database.
func CreateTestSpu(t *testing.T, client *spanner.Client, name string) string {
	t.Helper()

	spu, err := domain.NewSpu(uuid.New().String(), name, "apparel", time.Now().UTC())
	require.NoError(t, err)

	_, err = client.Apply(context.Background(), []*spanner.Mutation{repo.NewSpuRepo(client).InsertMut(spu)})
	require.NoError(t, err, "failed to create test spu")

	return spu.ID
}

// CreateTestSku creates a SKU with the given combination directly in the database.
func CreateTestSku(t *testing.T, client *spanner.Client, spuID, code string, pairs []domain.AttributeValuePair) string {
	t.Helper()

	sku, err := domain.NewSku(uuid.New().String(), spuID, code, pairs, time.Now().UTC())
	require.NoError(t, err)

	_, err = client.Apply(context.Background(), []*spanner.Mutation{repo.NewSkuRepo(client).InsertMut(sku)})
	require.NoError(t, err, "failed to create test sku")

	return sku.ID()
}

// CreateTestPrice stores a price record. A missing ID is generated.
func CreateTestPrice(t *testing.T, client *spanner.Client, record domain.PriceRecord) string {
	t.Helper()

	if record.ID == "" {
		record.ID = uuid.New().String()
	}

	_, err := client.Apply(context.Background(), []*spanner.Mutation{repo.NewPriceRepo(client).InsertMut(&record)})
	require.NoError(t, err, "failed to create test price")

	return record.ID
}

// GetSkuByID reads a SKU row for verification.
func GetSkuByID(t *testing.T, client *spanner.Client, skuID string) *m_sku.Data {
	t.Helper()

	row, err := client.Single().ReadRow(context.Background(), m_sku.TableName, spanner.Key{skuID}, m_sku.Columns)
	require.NoError(t, err, "failed to read sku")

	var data m_sku.Data
	require.NoError(t, row.ToStruct(&data))
	return &data
}

// AssertOutboxEvent verifies an outbox event exists with the given type.
func AssertOutboxEvent(t *testing.T, client *spanner.Client, eventType string) {
	t.Helper()

	ctx := context.Background()
	stmt := spanner.Statement{
		SQL:    "SELECT event_id FROM outbox_events WHERE event_type = @eventType",
		Params: map[string]interface{}{"eventType": eventType},
	}

	iter := client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	require.NoError(t, err, "outbox event not found for type: %s", eventType)
	require.NotNil(t, row, "outbox event not found for type: %s", eventType)
}

// AssertOutboxEventCount verifies the count of outbox events.
func AssertOutboxEventCount(t *testing.T, client *spanner.Client, expectedCount int) {
	t.Helper()
	AssertRowCount(t, client, m_outbox.TableName, expectedCount)
}
