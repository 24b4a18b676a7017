//go:build integration

package e2e

import (
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/light-bringer/procat-variants/internal/app/sku/domain"
	"github.com/light-bringer/procat-variants/internal/app/sku/domain/services"
	"github.com/light-bringer/procat-variants/internal/app/sku/queries/check_combination"
	"github.com/light-bringer/procat-variants/internal/app/sku/queries/find_sku"
	"github.com/light-bringer/procat-variants/internal/app/sku/queries/resolve_price"
	"github.com/light-bringer/procat-variants/internal/app/sku/repo"
	"github.com/light-bringer/procat-variants/internal/app/sku/usecases/add_price"
	"github.com/light-bringer/procat-variants/internal/app/sku/usecases/create_sku"
	"github.com/light-bringer/procat-variants/internal/app/sku/usecases/create_spu"
	"github.com/light-bringer/procat-variants/internal/app/sku/usecases/update_sku_attributes"
	"github.com/light-bringer/procat-variants/internal/pkg/clock"
	"github.com/light-bringer/procat-variants/internal/pkg/committer"
	"github.com/light-bringer/procat-variants/internal/pkg/logger"
	"github.com/light-bringer/procat-variants/internal/pkg/metrics"
	"github.com/light-bringer/procat-variants/tests/testutil"
)

// Services holds all use cases and queries for E2E tests.
type Services struct {
	// Commands
	CreateSpu        *create_spu.Interactor
	CreateSku        *create_sku.Interactor
	UpdateAttributes *update_sku_attributes.Interactor
	AddPrice         *add_price.Interactor

	// Queries
	ResolvePrice     *resolve_price.Query
	FindSku          *find_sku.Query
	CheckCombination *check_combination.Query

	// Infrastructure
	Clock    *clock.MockClock
	Client   *spanner.Client
	Registry *prometheus.Registry
}

// setupTest initializes all dependencies for E2E testing.
// The clock starts at 2024-03-05 noon UTC so price windows are deterministic.
func setupTest(t *testing.T) (*Services, func()) {
	t.Helper()

	client, cleanup := testutil.SetupSpannerTest(t)

	clk := clock.NewMockClock(time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC))
	comm := committer.NewCommitter(client)
	registry := prometheus.NewRegistry()
	catalogMetrics := metrics.NewCatalogMetrics(registry)

	spuRepo := repo.NewSpuRepo(client)
	skuRepo := repo.NewSkuRepo(client)
	priceRepo := repo.NewPriceRepo(client)
	outboxRepo := repo.NewOutboxRepo()

	index := services.NewVariantCombinationIndex(skuRepo)
	resolver := domain.NewPriceResolver(
		domain.NewPercentTaxCalculator(),
		domain.NewDateRangeFormatter(time.UTC),
		clk,
	)

	return &Services{
		CreateSpu:        create_spu.NewInteractor(spuRepo, outboxRepo, comm, clk),
		CreateSku:        create_sku.NewInteractor(skuRepo, outboxRepo, index, comm, clk, catalogMetrics),
		UpdateAttributes: update_sku_attributes.NewInteractor(skuRepo, outboxRepo, index, comm, clk, catalogMetrics),
		AddPrice:         add_price.NewInteractor(skuRepo, priceRepo, outboxRepo, comm, clk),
		ResolvePrice:     resolve_price.NewQuery(skuRepo, priceRepo, resolver, logger.Nop(), catalogMetrics),
		FindSku:          find_sku.NewQuery(index),
		CheckCombination: check_combination.NewQuery(index),
		Clock:            clk,
		Client:           client,
		Registry:         registry,
	}, cleanup
}
