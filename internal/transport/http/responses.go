package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/light-bringer/procat-variants/internal/pkg/logger"
)

type successEnvelope struct {
	Data any `json:"data"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// decodeJSONBody decodes a strict JSON body into dest and validates it.
func decodeJSONBody(r *http.Request, dest any) error {
	defer func() {
		_, _ = io.Copy(io.Discard, r.Body)
	}()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dest); err != nil {
		return badRequest("invalid request body", err)
	}
	if err := validate.Struct(dest); err != nil {
		return validationFailed(err)
	}
	return nil
}

func writeSuccess(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, successEnvelope{Data: data})
}

func writeError(ctx context.Context, log *logger.Logger, w http.ResponseWriter, err error) {
	status, body := mapDomainError(err)
	if status >= http.StatusInternalServerError {
		log.Error(ctx, "request.failed", err)
	} else {
		log.Debug(log.WithField(ctx, "error", err.Error()), "request.rejected")
	}
	writeJSON(w, status, errorEnvelope{Error: body})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
