package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

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
	"github.com/light-bringer/procat-variants/internal/pkg/config"
	"github.com/light-bringer/procat-variants/internal/pkg/logger"
	"github.com/light-bringer/procat-variants/internal/pkg/metrics"
	httptransport "github.com/light-bringer/procat-variants/internal/transport/http"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient *spanner.Client
	Registry      *prometheus.Registry
	HTTPHandler   *httptransport.Handler
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, cfg *config.Config, log *logger.Logger) (*ServiceOptions, error) {
	loc, err := cfg.DisplayLocation()
	if err != nil {
		return nil, err
	}

	// 1. Initialize Spanner client
	spannerClient, err := spanner.NewClient(ctx, cfg.SpannerDB)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}

	// 2. Create infrastructure components
	clk := clock.NewRealClock()
	comm := committer.NewCommitter(spannerClient)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	catalogMetrics := metrics.NewCatalogMetrics(registry)

	// 3. Create repositories
	spuRepo := repo.NewSpuRepo(spannerClient)
	skuRepo := repo.NewSkuRepo(spannerClient)
	priceRepo := repo.NewPriceRepo(spannerClient)
	outboxRepo := repo.NewOutboxRepo()

	// 4. Create domain services
	index := services.NewVariantCombinationIndex(skuRepo)
	resolver := domain.NewPriceResolver(
		domain.NewPercentTaxCalculator(),
		domain.NewDateRangeFormatter(loc),
		clk,
	)

	// 5. Create command use cases (write operations)
	createSpuUseCase := create_spu.NewInteractor(spuRepo, outboxRepo, comm, clk)
	createSkuUseCase := create_sku.NewInteractor(skuRepo, outboxRepo, index, comm, clk, catalogMetrics)
	updateAttributesUseCase := update_sku_attributes.NewInteractor(skuRepo, outboxRepo, index, comm, clk, catalogMetrics)
	addPriceUseCase := add_price.NewInteractor(skuRepo, priceRepo, outboxRepo, comm, clk)

	// 6. Create query use cases (read operations)
	resolvePriceQuery := resolve_price.NewQuery(skuRepo, priceRepo, resolver, log, catalogMetrics)
	findSkuQuery := find_sku.NewQuery(index)
	checkCombinationQuery := check_combination.NewQuery(index)

	// 7. Create HTTP handler
	handler := httptransport.NewHandler(httptransport.Handlers{
		CreateSpu:        createSpuUseCase,
		CreateSku:        createSkuUseCase,
		UpdateAttributes: updateAttributesUseCase,
		AddPrice:         addPriceUseCase,
		ResolvePrice:     resolvePriceQuery,
		FindSku:          findSkuQuery,
		CheckCombination: checkCombinationQuery,
	}, log)

	return &ServiceOptions{
		SpannerClient: spannerClient,
		Registry:      registry,
		HTTPHandler:   handler,
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
