package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pair(name, value string) AttributeValuePair {
	return AttributeValuePair{Name: name, Value: value}
}

func TestNewVariantKey(t *testing.T) {
	t.Run("order independent", func(t *testing.T) {
		a, err := NewVariantKey([]AttributeValuePair{pair("color", "red"), pair("size", "L")})
		require.NoError(t, err)
		b, err := NewVariantKey([]AttributeValuePair{pair("size", "L"), pair("color", "red")})
		require.NoError(t, err)

		assert.True(t, a.Equal(b))
		assert.Equal(t, a.String(), b.String())
		assert.Equal(t, a.Hash(), b.Hash())
	})

	t.Run("pairs sorted by name", func(t *testing.T) {
		key := MustVariantKey(pair("size", "L"), pair("color", "red"), pair("material", "cotton"))
		assert.Equal(t, []string{"color", "material", "size"}, key.Names())
		assert.Equal(t, []string{"red", "cotton", "L"}, key.Values())
		assert.Equal(t, 3, key.Len())
	})

	t.Run("empty combination rejected", func(t *testing.T) {
		_, err := NewVariantKey(nil)
		assert.ErrorIs(t, err, ErrInvalidCombination)
	})

	t.Run("duplicate attribute name rejected", func(t *testing.T) {
		_, err := NewVariantKey([]AttributeValuePair{pair("color", "red"), pair("color", "blue")})
		assert.ErrorIs(t, err, ErrInvalidCombination)
	})

	t.Run("empty attribute name rejected", func(t *testing.T) {
		_, err := NewVariantKey([]AttributeValuePair{pair("", "red")})
		assert.ErrorIs(t, err, ErrInvalidCombination)
	})

	t.Run("invalid UTF-8 rejected", func(t *testing.T) {
		_, err := NewVariantKey([]AttributeValuePair{pair("color", "\xff")})
		assert.ErrorIs(t, err, ErrInvalidCombination)

		_, err = NewVariantKey([]AttributeValuePair{pair("\xfe", "red")})
		assert.ErrorIs(t, err, ErrInvalidCombination)
	})

	t.Run("case sensitive", func(t *testing.T) {
		lower := MustVariantKey(pair("color", "red"))
		upper := MustVariantKey(pair("color", "Red"))
		assert.False(t, lower.Equal(upper))
	})

	t.Run("subset is a different key", func(t *testing.T) {
		small := MustVariantKey(pair("color", "red"))
		large := MustVariantKey(pair("color", "red"), pair("size", "L"))
		assert.False(t, small.Equal(large))
	})

	t.Run("separators inside values stay unambiguous", func(t *testing.T) {
		a := MustVariantKey(pair("a", "1,b"), pair("c", "2"))
		b := MustVariantKey(pair("a", "1"), pair("b", "c"))
		assert.False(t, a.Equal(b))
	})

	t.Run("input slice not mutated", func(t *testing.T) {
		in := []AttributeValuePair{pair("size", "L"), pair("color", "red")}
		_ = MustVariantKey(in...)
		assert.Equal(t, "size", in[0].Name)
	})
}

func TestVariantKeyFromColumns(t *testing.T) {
	key, err := VariantKeyFromColumns([]string{"size", "color"}, []string{"L", "red"})
	require.NoError(t, err)
	assert.True(t, key.Equal(MustVariantKey(pair("color", "red"), pair("size", "L"))))

	_, err = VariantKeyFromColumns([]string{"size"}, []string{"L", "red"})
	assert.ErrorIs(t, err, ErrInvalidCombination)
}
