package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSpu(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	spu, err := NewSpu("spu-1", "  T-Shirt ", " apparel", now)
	require.NoError(t, err)
	assert.Equal(t, "T-Shirt", spu.Name)
	assert.Equal(t, "apparel", spu.Category)

	_, err = NewSpu("spu-1", " ", "apparel", now)
	assert.ErrorIs(t, err, ErrInvalidSpuName)

	_, err = NewSpu("spu-1", "T-Shirt", "", now)
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestNewSku(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("valid sku", func(t *testing.T) {
		sku, err := NewSku("sku-1", "spu-1", "TS-RED-M", []AttributeValuePair{pair("size", "M"), pair("color", "red")}, now)
		require.NoError(t, err)

		assert.Equal(t, "sku-1", sku.ID())
		assert.Equal(t, "spu-1", sku.SpuID())
		assert.Equal(t, int64(1), sku.Version())
		assert.Equal(t, []string{"color", "size"}, sku.Key().Names())
		assert.True(t, sku.Changes().Dirty(FieldAttributes))

		require.Len(t, sku.DomainEvents(), 1)
		event, ok := sku.DomainEvents()[0].(*SkuCreatedEvent)
		require.True(t, ok)
		assert.Equal(t, "sku.created", event.EventType())
		assert.Equal(t, "sku-1", event.AggregateID())
	})

	t.Run("empty code", func(t *testing.T) {
		_, err := NewSku("sku-1", "spu-1", " ", []AttributeValuePair{pair("size", "M")}, now)
		assert.ErrorIs(t, err, ErrEmptySkuCode)
	})

	t.Run("invalid combination", func(t *testing.T) {
		_, err := NewSku("sku-1", "spu-1", "X", nil, now)
		assert.ErrorIs(t, err, ErrInvalidCombination)
	})
}

func TestSku_SetAttributes(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	later := created.Add(time.Hour)

	sku := ReconstructSku("sku-1", "spu-1", "TS-RED-M", MustVariantKey(pair("color", "red"), pair("size", "M")), 3, created, created)

	t.Run("same combination in another order is a no-op", func(t *testing.T) {
		changed, err := sku.SetAttributes([]AttributeValuePair{pair("size", "M"), pair("color", "red")}, later)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.False(t, sku.Changes().HasChanges())
		assert.Empty(t, sku.DomainEvents())
		assert.Equal(t, created, sku.UpdatedAt())
	})

	t.Run("new combination records change", func(t *testing.T) {
		changed, err := sku.SetAttributes([]AttributeValuePair{pair("size", "L"), pair("color", "red")}, later)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, []string{FieldAttributes}, sku.Changes().DirtyFields())
		assert.Equal(t, later, sku.UpdatedAt())
		assert.Equal(t, int64(3), sku.Version(), "version moves on commit, not on mutation")

		require.Len(t, sku.DomainEvents(), 1)
		event := sku.DomainEvents()[0].(*SkuAttributesChangedEvent)
		assert.Equal(t, "M", event.OldAttributes[1].Value)
		assert.Equal(t, "L", event.NewAttributes[1].Value)

		sku.ClearEvents()
		assert.Empty(t, sku.DomainEvents())
	})

	t.Run("invalid combination leaves sku untouched", func(t *testing.T) {
		before := sku.Key()
		_, err := sku.SetAttributes([]AttributeValuePair{pair("size", "L"), pair("size", "M")}, later)
		assert.ErrorIs(t, err, ErrInvalidCombination)
		assert.True(t, before.Equal(sku.Key()))
	})
}

func TestChangeTracker(t *testing.T) {
	ct := NewChangeTracker()
	assert.False(t, ct.HasChanges())

	ct.MarkDirty(FieldCode)
	ct.MarkDirty(FieldAttributes)
	ct.MarkDirty(FieldCode)
	assert.Equal(t, []string{FieldAttributes, FieldCode}, ct.DirtyFields())

	ct.Clear()
	assert.False(t, ct.HasChanges())
	assert.False(t, ct.Dirty(FieldCode))
}
