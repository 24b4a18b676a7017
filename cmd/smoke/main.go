// Command smoke drives the HTTP API end to end against a running server:
// it creates an SPU with two variants, proves the duplicate guard, stores
// prices and resolves the composite quote.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/light-bringer/procat-variants/internal/pkg/logger"
)

type client struct {
	base string
	http *http.Client
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *client) do(ctx context.Context, method, path string, body any) (int, envelope, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return 0, envelope{}, err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return 0, envelope{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, envelope{}, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return resp.StatusCode, envelope{}, fmt.Errorf("decoding %s %s: %w", method, path, err)
	}
	return resp.StatusCode, env, nil
}

// expect calls the API and fails unless the status matches.
func (c *client) expect(ctx context.Context, want int, method, path string, body any) (json.RawMessage, error) {
	status, env, err := c.do(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	if status != want {
		msg := ""
		if env.Error != nil {
			msg = env.Error.Code + ": " + env.Error.Message
		}
		return nil, fmt.Errorf("%s %s: got %d, want %d (%s)", method, path, status, want, msg)
	}
	return env.Data, nil
}

func createdID(data json.RawMessage) (string, error) {
	var out struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

func attrs(kv ...string) []map[string]string {
	out := make([]map[string]string, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, map[string]string{"name": kv[i], "value": kv[i+1]})
	}
	return out
}

func main() {
	base := flag.String("addr", "http://localhost:8080", "Base URL of the running server")
	flag.Parse()

	log := logger.New(logger.Options{ServiceName: "smoke", Format: "console"})
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c := &client{base: *base, http: &http.Client{Timeout: 10 * time.Second}}
	if err := run(ctx, c, log); err != nil {
		log.Error(ctx, "smoke run failed", err)
		os.Exit(1)
	}
	log.Info(ctx, "smoke run passed")
}

func run(ctx context.Context, c *client, log *logger.Logger) error {
	data, err := c.expect(ctx, http.StatusCreated, http.MethodPost, "/api/v1/spus",
		map[string]string{"name": "Classic Tee", "category": "apparel"})
	if err != nil {
		return err
	}
	spuID, err := createdID(data)
	if err != nil {
		return err
	}
	ctx = log.WithField(ctx, "spu_id", spuID)
	log.Info(ctx, "spu created")

	skuPath := "/api/v1/spus/" + spuID + "/skus"
	data, err = c.expect(ctx, http.StatusCreated, http.MethodPost, skuPath, map[string]any{
		"code":       "TEE-RED-M",
		"attributes": attrs("color", "red", "size", "M"),
	})
	if err != nil {
		return err
	}
	redID, err := createdID(data)
	if err != nil {
		return err
	}

	if _, err := c.expect(ctx, http.StatusCreated, http.MethodPost, skuPath, map[string]any{
		"code":       "TEE-BLUE-M",
		"attributes": attrs("size", "M", "color", "blue"),
	}); err != nil {
		return err
	}

	// Same pairs in a different order must collide.
	if _, err := c.expect(ctx, http.StatusConflict, http.MethodPost, skuPath, map[string]any{
		"code":       "TEE-RED-M-2",
		"attributes": attrs("size", "M", "color", "red"),
	}); err != nil {
		return err
	}
	log.Info(ctx, "duplicate combination rejected")

	pricePath := "/api/v1/skus/" + redID + "/prices"
	for _, price := range []map[string]any{
		{"type": "SALE", "currency": "CNY", "amount": "199.00", "tax_rate_percent": 13},
		{"type": "SALE", "currency": "CNY", "amount": "179.00", "priority": 5,
			"effective_at": time.Now().Add(-time.Hour).UTC().Format(time.RFC3339),
			"expires_at":   time.Now().Add(24 * time.Hour).UTC().Format(time.RFC3339)},
		{"type": "SALE", "currency": "USD", "amount": "29.99"},
	} {
		if _, err := c.expect(ctx, http.StatusCreated, http.MethodPost, pricePath, price); err != nil {
			return err
		}
	}

	data, err = c.expect(ctx, http.StatusOK, http.MethodGet, "/api/v1/skus/"+redID+"/prices/effective?type=SALE", nil)
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
