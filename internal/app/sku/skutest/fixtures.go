package skutest

import (
	"time"

	"github.com/light-bringer/procat-variants/internal/app/sku/domain"
)

var testEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// Epoch is the instant seeded aggregates are created at.
func Epoch() time.Time { return testEpoch }

// Pairs builds attribute pairs from alternating names and values.
func Pairs(kv ...string) []domain.AttributeValuePair {
	out := make([]domain.AttributeValuePair, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, domain.AttributeValuePair{Name: kv[i], Value: kv[i+1]})
	}
	return out
}
