package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVariantIndex(t *testing.T) {
	redL := MustVariantKey(pair("color", "red"), pair("size", "L"))
	blueL := MustVariantKey(pair("color", "blue"), pair("size", "L"))

	idx := NewVariantIndex("spu-1", []SkuCombination{
		{SkuID: "sku-red-l", Key: redL},
		{SkuID: "sku-blue-l", Key: blueL},
	})

	t.Run("existing combination is not unique", func(t *testing.T) {
		assert.False(t, idx.IsUnique(MustVariantKey(pair("size", "L"), pair("color", "red")), ""))
	})

	t.Run("excluding the owner makes it unique", func(t *testing.T) {
		assert.True(t, idx.IsUnique(redL, "sku-red-l"))
	})

	t.Run("excluding another sku does not help", func(t *testing.T) {
		assert.False(t, idx.IsUnique(redL, "sku-blue-l"))
	})

	t.Run("subset is not a collision", func(t *testing.T) {
		assert.True(t, idx.IsUnique(MustVariantKey(pair("color", "red")), ""))
	})

	t.Run("superset is not a collision", func(t *testing.T) {
		assert.True(t, idx.IsUnique(MustVariantKey(pair("color", "red"), pair("size", "L"), pair("fit", "slim")), ""))
	})

	t.Run("find exact match", func(t *testing.T) {
		id, ok := idx.Find(MustVariantKey(pair("size", "L"), pair("color", "blue")))
		assert.True(t, ok)
		assert.Equal(t, "sku-blue-l", id)
	})

	t.Run("find does not match partially", func(t *testing.T) {
		_, ok := idx.Find(MustVariantKey(pair("color", "red")))
		assert.False(t, ok)
	})

	t.Run("unique iff not found", func(t *testing.T) {
		for _, key := range []VariantKey{redL, blueL, MustVariantKey(pair("color", "green"))} {
			_, found := idx.Find(key)
			assert.Equal(t, !found, idx.IsUnique(key, ""))
		}
	})

	assert.Empty(t, idx.Collisions())
}

func TestVariantIndex_Collisions(t *testing.T) {
	key := MustVariantKey(pair("color", "red"))
	idx := NewVariantIndex("spu-1", []SkuCombination{
		{SkuID: "sku-b", Key: key},
		{SkuID: "sku-a", Key: key},
	})

	assert.Equal(t, []string{key.String()}, idx.Collisions())

	id, ok := idx.Find(key)
	assert.True(t, ok)
	assert.Equal(t, "sku-a", id)

	// Neither owner can claim uniqueness while the other still holds the key.
	assert.False(t, idx.IsUnique(key, "sku-a"))
	assert.False(t, idx.IsUnique(key, "sku-b"))
}
