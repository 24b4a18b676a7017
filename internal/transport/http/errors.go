package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/light-bringer/procat-variants/internal/app/sku/domain"
)

// apiError is the error body returned to clients.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type errorEnvelope struct {
	Error apiError `json:"error"`
}

// requestError marks a malformed or invalid request body or parameter.
type requestError struct {
	msg     string
	details map[string]string
	err     error
}

func (e *requestError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

func (e *requestError) Unwrap() error { return e.err }

func badRequest(msg string, err error) error {
	return &requestError{msg: msg, err: err}
}

func validationFailed(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return badRequest("validation failed", err)
	}
	details := make(map[string]string, len(errs))
	for _, fe := range errs {
		details[fieldPath(fe)] = validationMessage(fe)
	}
	return &requestError{msg: "validation failed", details: details}
}

// fieldPath drops the struct name from the namespace: attributes[0].name.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "len":
		return fmt.Sprintf("must have length %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be >= %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be <= %s", fe.Param())
	}
	return "is invalid"
}

// mapDomainError converts an error into an HTTP status and body.
// Client errors echo the error text; anything unrecognised is a 500 with a fixed message.
func mapDomainError(err error) (int, apiError) {
	var reqErr *requestError
	switch {
	case errors.As(err, &reqErr):
		body := apiError{Code: "invalid_request", Message: reqErr.Error()}
		if len(reqErr.details) > 0 {
			body.Details = reqErr.details
		}
		return http.StatusBadRequest, body

	case errors.Is(err, domain.ErrInvalidCombination):
		return http.StatusBadRequest, apiError{Code: "invalid_combination", Message: err.Error()}

	case errors.Is(err, domain.ErrInvalidRecord):
		return http.StatusBadRequest, apiError{Code: "invalid_record", Message: err.Error()}

	case errors.Is(err, domain.ErrInvalidPriceType):
		return http.StatusBadRequest, apiError{Code: "invalid_price_type", Message: err.Error()}

	case errors.Is(err, domain.ErrInvalidSpuName),
		errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, domain.ErrEmptySkuCode):
		return http.StatusBadRequest, apiError{Code: "invalid_request", Message: err.Error()}

	case errors.Is(err, domain.ErrSpuNotFound):
		return http.StatusNotFound, apiError{Code: "spu_not_found", Message: err.Error()}

	case errors.Is(err, domain.ErrSkuNotFound):
		return http.StatusNotFound, apiError{Code: "sku_not_found", Message: err.Error()}

	case errors.Is(err, domain.ErrNoEffectivePrice):
		return http.StatusNotFound, apiError{Code: "no_effective_price", Message: err.Error()}

	case errors.Is(err, domain.ErrDuplicateVariant):
		return http.StatusConflict, apiError{Code: "duplicate_variant", Message: err.Error()}

	case errors.Is(err, domain.ErrConcurrentModification):
		return http.StatusConflict, apiError{Code: "concurrent_modification", Message: err.Error()}

	default:
		return http.StatusInternalServerError, apiError{Code: "internal", Message: "internal server error"}
	}
}
