//go:build integration

package integration

import (
	"context"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/procat-variants/internal/app/sku/domain"
	"github.com/light-bringer/procat-variants/internal/app/sku/repo"
	"github.com/light-bringer/procat-variants/internal/models/m_outbox"
	"github.com/light-bringer/procat-variants/tests/testutil"
)

func TestOutboxRepository_InsertMut(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	repository := repo.NewOutboxRepo()

	event := &domain.SpuCreatedEvent{
		SpuID:    "test-spu-id",
		Name:     "Classic Tee",
		Category: "apparel",
	}

	outboxEvent, err := repository.EnrichEvent(event)
	require.NoError(t, err)
	assert.JSONEq(t, `{"spu_id":"test-spu-id","name":"Classic Tee","category":"apparel","created_at":"0001-01-01T00:00:00Z"}`, string(outboxEvent.Payload))

	mutation := repository.InsertMut(outboxEvent)
	require.NotNil(t, mutation)

	ctx := context.Background()
	_, err = client.Apply(ctx, []*spanner.Mutation{mutation})
	require.NoError(t, err)

	testutil.AssertOutboxEventCount(t, client, 1)
	testutil.AssertOutboxEvent(t, client, "spu.created")

	row, err := client.Single().ReadRow(ctx, m_outbox.TableName, spanner.Key{outboxEvent.EventID},
		[]string{m_outbox.Status, m_outbox.AggregateID})
	require.NoError(t, err)

	var status, aggregateID string
	require.NoError(t, row.Columns(&status, &aggregateID))
	assert.Equal(t, m_outbox.StatusPending, status)
	assert.Equal(t, "test-spu-id", aggregateID)
}
