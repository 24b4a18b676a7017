package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"unicode/utf8"
)

// AttributeValuePair is one attribute assignment of a SKU, e.g. color=red.
// Multi-valued attributes are expressed as one pair per selected value.
type AttributeValuePair struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// VariantKey is the canonical, order-independent form of a SKU's attribute
// combination. Two keys are equal iff they hold the same (name, value) set.
// Comparison is case-sensitive and exact.
type VariantKey struct {
	pairs     []AttributeValuePair
	canonical string
}

// NewVariantKey normalizes pairs into a VariantKey.
// The combination must be non-empty and may name each attribute only once.
func NewVariantKey(pairs []AttributeValuePair) (VariantKey, error) {
	if len(pairs) == 0 {
		return VariantKey{}, fmt.Errorf("%w: at least one attribute is required", ErrInvalidCombination)
	}

	seen := make(map[string]struct{}, len(pairs))
	sorted := make([]AttributeValuePair, 0, len(pairs))
	for _, p := range pairs {
		if p.Name == "" {
			return VariantKey{}, fmt.Errorf("%w: attribute name cannot be empty", ErrInvalidCombination)
		}
		if !utf8.ValidString(p.Name) || !utf8.ValidString(p.Value) {
			return VariantKey{}, fmt.Errorf("%w: attribute %q is not valid UTF-8", ErrInvalidCombination, p.Name)
		}
		if _, dup := seen[p.Name]; dup {
			return VariantKey{}, fmt.Errorf("%w: attribute %q specified more than once", ErrInvalidCombination, p.Name)
		}
		seen[p.Name] = struct{}{}
		sorted = append(sorted, p)
	}

	// Names are unique, so ordering by name alone is already total.
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	return VariantKey{pairs: sorted, canonical: encodeCanonical(sorted)}, nil
}

// MustVariantKey is NewVariantKey for fixtures; it panics on invalid input.
func MustVariantKey(pairs ...AttributeValuePair) VariantKey {
	key, err := NewVariantKey(pairs)
	if err != nil {
		panic(err)
	}
	return key
}

// Pairs returns a copy of the normalized pairs, sorted by attribute name.
func (k VariantKey) Pairs() []AttributeValuePair {
	out := make([]AttributeValuePair, len(k.pairs))
	copy(out, k.pairs)
	return out
}

// Len returns the number of attribute pairs.
func (k VariantKey) Len() int { return len(k.pairs) }

// IsZero reports whether the key was never initialized.
func (k VariantKey) IsZero() bool { return k.canonical == "" }

// String returns the canonical encoding used for equality and storage.
func (k VariantKey) String() string { return k.canonical }

// Equal reports whether both keys describe the same combination.
func (k VariantKey) Equal(other VariantKey) bool {
	return k.canonical == other.canonical
}

// Hash returns the hex sha256 of the canonical encoding.
// Storage keys its uniqueness constraint on (spu_id, hash).
func (k VariantKey) Hash() string {
	sum := sha256.Sum256([]byte(k.canonical))
	return hex.EncodeToString(sum[:])
}

// Names returns the attribute names in canonical order.
func (k VariantKey) Names() []string {
	names := make([]string, len(k.pairs))
	for i, p := range k.pairs {
		names[i] = p.Name
	}
	return names
}

// Values returns the attribute values in canonical order (parallel to Names).
func (k VariantKey) Values() []string {
	values := make([]string, len(k.pairs))
	for i, p := range k.pairs {
		values[i] = p.Value
	}
	return values
}

// VariantKeyFromColumns rebuilds a key from the parallel name/value columns
// persisted by the repository.
func VariantKeyFromColumns(names, values []string) (VariantKey, error) {
	if len(names) != len(values) {
		return VariantKey{}, fmt.Errorf("%w: %d names but %d values", ErrInvalidCombination, len(names), len(values))
	}
	pairs := make([]AttributeValuePair, len(names))
	for i := range names {
		pairs[i] = AttributeValuePair{Name: names[i], Value: values[i]}
	}
	return NewVariantKey(pairs)
}

// encodeCanonical renders sorted pairs as a JSON array of [name, value] tuples.
// JSON quoting keeps names or values containing separators unambiguous.
func encodeCanonical(sorted []AttributeValuePair) string {
	tuples := make([][2]string, len(sorted))
	for i, p := range sorted {
		tuples[i] = [2]string{p.Name, p.Value}
	}
	b, _ := json.Marshal(tuples)
	return string(b)
}
