package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/light-bringer/procat-variants/internal/app/sku/domain"
	"github.com/light-bringer/procat-variants/internal/app/sku/queries/check_combination"
	"github.com/light-bringer/procat-variants/internal/app/sku/queries/find_sku"
	"github.com/light-bringer/procat-variants/internal/app/sku/queries/resolve_price"
	"github.com/light-bringer/procat-variants/internal/app/sku/usecases/add_price"
	"github.com/light-bringer/procat-variants/internal/app/sku/usecases/create_sku"
	"github.com/light-bringer/procat-variants/internal/app/sku/usecases/create_spu"
	"github.com/light-bringer/procat-variants/internal/app/sku/usecases/update_sku_attributes"
	"github.com/light-bringer/procat-variants/internal/pkg/logger"
)

type createSpuExecutor interface {
	Execute(ctx context.Context, req *create_spu.Request) (string, error)
}

type createSkuExecutor interface {
	Execute(ctx context.Context, req *create_sku.Request) (string, error)
}

type updateAttributesExecutor interface {
	Execute(ctx context.Context, req *update_sku_attributes.Request) (*update_sku_attributes.Result, error)
}

type addPriceExecutor interface {
	Execute(ctx context.Context, req *add_price.Request) (string, error)
}

type resolvePriceExecutor interface {
	Execute(ctx context.Context, req *resolve_price.Request) (*domain.CompositeQuote, error)
}

type findSkuExecutor interface {
	Execute(ctx context.Context, req *find_sku.Request) (string, error)
}

type checkCombinationExecutor interface {
	Execute(ctx context.Context, req *check_combination.Request) (bool, error)
}

// Handlers groups the operations exposed over HTTP.
type Handlers struct {
	CreateSpu        createSpuExecutor
	CreateSku        createSkuExecutor
	UpdateAttributes updateAttributesExecutor
	AddPrice         addPriceExecutor
	ResolvePrice     resolvePriceExecutor
	FindSku          findSkuExecutor
	CheckCombination checkCombinationExecutor
}

// Handler implements the catalog JSON API.
type Handler struct {
	ops Handlers
	log *logger.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(ops Handlers, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{ops: ops, log: log}
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	writeError(r.Context(), h.log, w, err)
}

// CreateSpu handles POST /api/v1/spus.
func (h *Handler) CreateSpu(w http.ResponseWriter, r *http.Request) {
	var req createSpuRequest
	if err := decodeJSONBody(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	id, err := h.ops.CreateSpu.Execute(r.Context(), &create_spu.Request{
		Name:     req.Name,
		Category: req.Category,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeSuccess(w, http.StatusCreated, idResponse{ID: id})
}

// CreateSku handles POST /api/v1/spus/{spuID}/skus.
func (h *Handler) CreateSku(w http.ResponseWriter, r *http.Request) {
	var req createSkuRequest
	if err := decodeJSONBody(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	id, err := h.ops.CreateSku.Execute(r.Context(), &create_sku.Request{
		SpuID:      chi.URLParam(r, "spuID"),
		Code:       req.Code,
		Attributes: toPairs(req.Attributes),
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeSuccess(w, http.StatusCreated, idResponse{ID: id})
}

// LookupSku handles POST /api/v1/spus/{spuID}/skus/lookup.
func (h *Handler) LookupSku(w http.ResponseWriter, r *http.Request) {
	var req combinationRequest
	if err := decodeJSONBody(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	skuID, err := h.ops.FindSku.Execute(r.Context(), &find_sku.Request{
		SpuID:      chi.URLParam(r, "spuID"),
		Attributes: toPairs(req.Attributes),
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, lookupResponse{SkuID: skuID})
}

// CheckCombination handles POST /api/v1/spus/{spuID}/combinations/check.
func (h *Handler) CheckCombination(w http.ResponseWriter, r *http.Request) {
	var req combinationRequest
	if err := decodeJSONBody(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	available, err := h.ops.CheckCombination.Execute(r.Context(), &check_combination.Request{
		SpuID:        chi.URLParam(r, "spuID"),
		Attributes:   toPairs(req.Attributes),
		ExcludeSkuID: req.ExcludeSkuID,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, availabilityResponse{Available: available})
}

// UpdateAttributes handles PUT /api/v1/skus/{skuID}/attributes.
func (h *Handler) UpdateAttributes(w http.ResponseWriter, r *http.Request) {
	var req updateAttributesRequest
	if err := decodeJSONBody(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	result, err := h.ops.UpdateAttributes.Execute(r.Context(), &update_sku_attributes.Request{
		SkuID:           chi.URLParam(r, "skuID"),
		Attributes:      toPairs(req.Attributes),
		ExpectedVersion: req.Version,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, updateAttributesResponse{
		Changed: result.Changed,
		Version: result.Version,
	})
}

// AddPrice handles POST /api/v1/skus/{skuID}/prices.
func (h *Handler) AddPrice(w http.ResponseWriter, r *http.Request) {
	var req addPriceRequest
	if err := decodeJSONBody(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	priceType, err := domain.ParsePriceType(req.Type)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	id, err := h.ops.AddPrice.Execute(r.Context(), &add_price.Request{
		SkuID:          chi.URLParam(r, "skuID"),
		Type:           priceType,
		Currency:       req.Currency,
		Amount:         *req.Amount,
		TaxRatePercent: req.TaxRatePercent,
		Priority:       req.Priority,
		EffectiveAt:    req.EffectiveAt,
		ExpiresAt:      req.ExpiresAt,
		IsDefault:      req.IsDefault,
		MinBuyQuantity: req.MinBuyQuantity,
		Refundable:     req.Refundable,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeSuccess(w, http.StatusCreated, idResponse{ID: id})
}

// EffectivePrice handles GET /api/v1/skus/{skuID}/prices/effective.
// type defaults to SALE; as_of is RFC3339 and defaults to now.
func (h *Handler) EffectivePrice(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	rawType := query.Get("type")
	if rawType == "" {
		rawType = domain.PriceTypeSale.String()
	}
	priceType, err := domain.ParsePriceType(rawType)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var asOf time.Time
	if raw := query.Get("as_of"); raw != "" {
		asOf, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			h.fail(w, r, badRequest("as_of must be RFC3339", err))
			return
		}
	}

	quote, err := h.ops.ResolvePrice.Execute(r.Context(), &resolve_price.Request{
		SkuID: chi.URLParam(r, "skuID"),
		Type:  priceType,
		AsOf:  asOf,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, toQuoteResponse(quote))
}

// Healthz handles GET /healthz.
func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}
