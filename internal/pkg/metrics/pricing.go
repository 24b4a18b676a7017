package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Resolution outcomes.
const (
	OutcomeQuoted  = "quoted"
	OutcomeEmpty   = "empty"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// Stages at which a duplicate combination can be rejected.
const (
	StagePrecheck = "precheck"
	StageStorage  = "storage"
)

// CatalogMetrics records price resolution and variant identity signals.
// A nil *CatalogMetrics is valid and records nothing.
type CatalogMetrics struct {
	resolutions *prometheus.CounterVec
	overlaps    *prometheus.CounterVec
	duplicates  *prometheus.CounterVec
}

// NewCatalogMetrics registers the catalog metrics on the provided registerer.
func NewCatalogMetrics(reg prometheus.Registerer) *CatalogMetrics {
	if reg == nil {
		return &CatalogMetrics{}
	}
	resolutions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "price_resolutions_total",
		Help: "Price resolutions by price type and outcome.",
	}, []string{"price_type", "outcome"})
	overlaps := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "price_overlaps_total",
		Help: "Resolutions where several records of one currency were valid at once.",
	}, []string{"price_type", "currency"})
	duplicates := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sku_duplicate_combinations_total",
		Help: "Rejected SKU writes whose attribute combination was already taken.",
	}, []string{"operation", "stage"})
	reg.MustRegister(resolutions, overlaps, duplicates)
	return &CatalogMetrics{
		resolutions: resolutions,
		overlaps:    overlaps,
		duplicates:  duplicates,
	}
}

// IncResolution counts one resolution.
func (m *CatalogMetrics) IncResolution(priceType, outcome string) {
	if m == nil || m.resolutions == nil {
		return
	}
	m.resolutions.WithLabelValues(normalizeLabel(priceType), normalizeLabel(outcome)).Inc()
}

// IncOverlap counts one overlapping currency.
func (m *CatalogMetrics) IncOverlap(priceType, currency string) {
	if m == nil || m.overlaps == nil {
		return
	}
	m.overlaps.WithLabelValues(normalizeLabel(priceType), normalizeLabel(currency)).Inc()
}

// IncDuplicate counts one rejected combination.
func (m *CatalogMetrics) IncDuplicate(operation, stage string) {
	if m == nil || m.duplicates == nil {
		return
	}
	m.duplicates.WithLabelValues(normalizeLabel(operation), normalizeLabel(stage)).Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
