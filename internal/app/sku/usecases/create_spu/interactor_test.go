package create_spu

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/procat-variants/internal/app/sku/domain"
	"github.com/light-bringer/procat-variants/internal/app/sku/skutest"
	"github.com/light-bringer/procat-variants/internal/pkg/clock"
)

func setup() (*Interactor, *skutest.Store, *skutest.Outbox, *skutest.Applier) {
	store := skutest.NewStore()
	outbox := &skutest.Outbox{}
	applier := &skutest.Applier{}
	clk := clock.NewMockClock(time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC))
	return NewInteractor(store, outbox, applier, clk), store, outbox, applier
}

func TestCreateSpu_Success(t *testing.T) {
	interactor, store, outbox, applier := setup()

	id, err := interactor.Execute(context.Background(), &Request{Name: " Classic Tee ", Category: "apparel"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	require.Len(t, store.InsertedSpus, 1)
	assert.Equal(t, "Classic Tee", store.InsertedSpus[0].Name)
	assert.Equal(t, []string{"spu.created"}, outbox.Types())
	assert.Contains(t, string(outbox.Events[0].Payload), `"name":"Classic Tee"`)

	require.Len(t, applier.Plans, 1)
	assert.Equal(t, 2, applier.Plans[0].Count())
}

func TestCreateSpu_Validation(t *testing.T) {
	interactor, _, _, applier := setup()

	_, err := interactor.Execute(context.Background(), &Request{Name: "", Category: "apparel"})
	assert.ErrorIs(t, err, domain.ErrInvalidSpuName)

	_, err = interactor.Execute(context.Background(), &Request{Name: "Tee", Category: " "})
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)

	assert.Zero(t, applier.Applies)
}

func TestCreateSpu_CommitFailure(t *testing.T) {
	interactor, _, _, applier := setup()
	applier.Err = errors.New("spanner down")

	_, err := interactor.Execute(context.Background(), &Request{Name: "Tee", Category: "apparel"})
	assert.ErrorIs(t, err, applier.Err)
}
