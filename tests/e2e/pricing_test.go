//go:build integration

package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/procat-variants/internal/app/sku/domain"
	"github.com/light-bringer/procat-variants/internal/app/sku/queries/resolve_price"
	"github.com/light-bringer/procat-variants/internal/app/sku/skutest"
	"github.com/light-bringer/procat-variants/internal/app/sku/usecases/add_price"
	"github.com/light-bringer/procat-variants/tests/testutil"
)

func TestEffectivePriceResolution(t *testing.T) {
	ctx := context.Background()
	suite, cleanup := setupTest(t)
	defer cleanup()

	spuID := testutil.CreateTestSpu(t, suite.Client, "Classic Tee")
	skuID := testutil.CreateTestSku(t, suite.Client, spuID, "TEE-RED", skutest.Pairs("color", "red"))

	rate := 13.0
	priority := int64(10)
	promoStart := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	promoEnd := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	listID, err := suite.AddPrice.Execute(ctx, &add_price.Request{
		SkuID:          skuID,
		Type:           domain.PriceTypeSale,
		Currency:       "cny",
		Amount:         domain.MustMoney("199.00"),
		TaxRatePercent: &rate,
	})
	require.NoError(t, err)

	promoID, err := suite.AddPrice.Execute(ctx, &add_price.Request{
		SkuID:          skuID,
		Type:           domain.PriceTypeSale,
		Currency:       "CNY",
		Amount:         domain.MustMoney("179.00"),
		TaxRatePercent: &rate,
		Priority:       &priority,
		EffectiveAt:    &promoStart,
		ExpiresAt:      &promoEnd,
	})
	require.NoError(t, err)

	_, err = suite.AddPrice.Execute(ctx, &add_price.Request{
		SkuID:    skuID,
		Type:     domain.PriceTypeSale,
		Currency: "USD",
		Amount:   domain.MustMoney("29.99"),
	})
	require.NoError(t, err)

	t.Run("promotion wins inside its window", func(t *testing.T) {
		quote, err := suite.ResolvePrice.Execute(ctx, &resolve_price.Request{SkuID: skuID, Type: domain.PriceTypeSale})
		require.NoError(t, err)
		require.Len(t, quote.Quotes, 2)

		cny, err := quote.Require("CNY")
		require.NoError(t, err)
		assert.Equal(t, promoID, cny.SourceRecordID)
		assert.Equal(t, "179.00", cny.Amount.String())
		assert.Equal(t, "23.27", cny.TaxAmount.String())
		assert.Equal(t, "202.27", cny.TaxedAmount.String())
		assert.Equal(t, "2024-03-01至15", cny.Window)
		assert.Equal(t, []string{"CNY"}, quote.Overlaps)

		usd, err := quote.Require("USD")
		require.NoError(t, err)
		assert.Equal(t, "29.99", usd.TaxedAmount.String())
	})

	t.Run("list price after the window closes", func(t *testing.T) {
		quote, err := suite.ResolvePrice.Execute(ctx, &resolve_price.Request{
			SkuID: skuID,
			Type:  domain.PriceTypeSale,
			AsOf:  time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)

		cny, err := quote.Require("CNY")
		require.NoError(t, err)
		assert.Equal(t, listID, cny.SourceRecordID)
		assert.Equal(t, "25.87", cny.TaxAmount.String())
		assert.Equal(t, "224.87", cny.TaxedAmount.String())
		assert.Empty(t, cny.Window)
	})

	t.Run("other price types are independent", func(t *testing.T) {
		quote, err := suite.ResolvePrice.Execute(ctx, &resolve_price.Request{SkuID: skuID, Type: domain.PriceTypeMember})
		require.NoError(t, err)
		assert.True(t, quote.IsEmpty())

		_, err = quote.Require("CNY")
		assert.ErrorIs(t, err, domain.ErrNoEffectivePrice)
	})

	t.Run("unknown sku", func(t *testing.T) {
		_, err := suite.ResolvePrice.Execute(ctx, &resolve_price.Request{SkuID: "missing", Type: domain.PriceTypeSale})
		assert.ErrorIs(t, err, domain.ErrSkuNotFound)
	})
}

func TestAddPrice_RejectsInvalidRecord(t *testing.T) {
	ctx := context.Background()
	suite, cleanup := setupTest(t)
	defer cleanup()

	spuID := testutil.CreateTestSpu(t, suite.Client, "Classic Tee")
	skuID := testutil.CreateTestSku(t, suite.Client, spuID, "TEE-RED", skutest.Pairs("color", "red"))

	_, err := suite.AddPrice.Execute(ctx, &add_price.Request{
		SkuID:    skuID,
		Type:     domain.PriceTypeSale,
		Currency: "CNY",
		Amount:   domain.MustMoney("-1.00"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRecord)

	testutil.AssertOutboxEventCount(t, suite.Client, 0)
}
