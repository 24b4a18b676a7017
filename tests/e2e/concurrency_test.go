//go:build integration

package e2e

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/procat-variants/internal/app/sku/domain"
	"github.com/light-bringer/procat-variants/internal/app/sku/skutest"
	"github.com/light-bringer/procat-variants/internal/app/sku/usecases/create_sku"
	"github.com/light-bringer/procat-variants/internal/app/sku/usecases/update_sku_attributes"
	"github.com/light-bringer/procat-variants/internal/models/m_sku"
	"github.com/light-bringer/procat-variants/tests/testutil"
)

// TestConcurrentCreateSameCombination races several writers on one combination.
// Expected: exactly one wins; everyone else sees ErrDuplicateVariant.
func TestConcurrentCreateSameCombination(t *testing.T) {
	ctx := context.Background()
	suite, cleanup := setupTest(t)
	defer cleanup()

	spuID := testutil.CreateTestSpu(t, suite.Client, "Classic Tee")

	const writers = 5
	var wg sync.WaitGroup
	errs := make([]error, writers)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = suite.CreateSku.Execute(ctx, &create_sku.Request{
				SpuID:      spuID,
				Code:       fmt.Sprintf("TEE-RED-M-%d", i),
				Attributes: skutest.Pairs("color", "red", "size", "M"),
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.True(t, errors.Is(err, domain.ErrDuplicateVariant), "unexpected error: %v", err)
	}
	assert.Equal(t, 1, succeeded)
	testutil.AssertRowCount(t, suite.Client, m_sku.TableName, 1)
}

// TestConcurrentAttributeEdits races two edits of the same SKU.
// Expected: one succeeds, the other is refused as a concurrent modification.
func TestConcurrentAttributeEdits(t *testing.T) {
	ctx := context.Background()
	suite, cleanup := setupTest(t)
	defer cleanup()

	spuID := testutil.CreateTestSpu(t, suite.Client, "Classic Tee")
	skuID := testutil.CreateTestSku(t, suite.Client, spuID, "TEE-RED", skutest.Pairs("color", "red"))

	version := int64(1)
	var wg sync.WaitGroup
	var err1, err2 error

	wg.Add(2)
	go func() {
		defer wg.Done()
		_, err1 = suite.UpdateAttributes.Execute(ctx, &update_sku_attributes.Request{
			SkuID:           skuID,
			Attributes:      skutest.Pairs("color", "green"),
			ExpectedVersion: &version,
		})
	}()
	go func() {
		defer wg.Done()
		_, err2 = suite.UpdateAttributes.Execute(ctx, &update_sku_attributes.Request{
			SkuID:           skuID,
			Attributes:      skutest.Pairs("color", "blue"),
			ExpectedVersion: &version,
		})
	}()
	wg.Wait()

	if err1 == nil && err2 == nil {
		t.Fatal("both edits succeeded - expected one to fail")
	}
	if err1 != nil && err2 != nil {
		t.Fatalf("both edits failed - expected one to succeed. err1=%v, err2=%v", err1, err2)
	}

	failed := err1
	if failed == nil {
		failed = err2
	}
	assert.ErrorIs(t, failed, domain.ErrConcurrentModification)

	row := testutil.GetSkuByID(t, suite.Client, skuID)
	require.Equal(t, int64(2), row.Version)
}
