package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/light-bringer/procat-variants/internal/pkg/logger"
)

// NewRouter mounts the catalog API, health check and metrics endpoint.
func NewRouter(h *Handler, log *logger.Logger, gatherer prometheus.Gatherer) http.Handler {
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()
	r.Use(RequestID(log))
	r.Use(Logging(log))
	r.Use(Recoverer(log))

	r.Get("/healthz", h.Healthz)
	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/spus", h.CreateSpu)
		r.Route("/spus/{spuID}", func(r chi.Router) {
			r.Post("/skus", h.CreateSku)
			r.Post("/skus/lookup", h.LookupSku)
			r.Post("/combinations/check", h.CheckCombination)
		})
		r.Route("/skus/{skuID}", func(r chi.Router) {
			r.Put("/attributes", h.UpdateAttributes)
			r.Post("/prices", h.AddPrice)
			r.Get("/prices/effective", h.EffectivePrice)
		})
	})

	return r
}
