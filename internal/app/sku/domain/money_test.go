package domain

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromString(t *testing.T) {
	t.Run("valid amount", func(t *testing.T) {
		m, err := NewMoneyFromString("99.9")
		require.NoError(t, err)
		assert.Equal(t, "99.90", m.String())
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, err := NewMoneyFromString("ninety")
		assert.Error(t, err)
	})

	t.Run("negative allowed at construction", func(t *testing.T) {
		m, err := NewMoneyFromString("-1")
		require.NoError(t, err)
		assert.True(t, m.IsNegative())
	})
}

func TestNewMoneyFromCents(t *testing.T) {
	assert.Equal(t, "99.90", NewMoneyFromCents(9990).String())
	assert.True(t, NewMoneyFromCents(0).IsZero())
}

func TestMoney_RatRoundTrip(t *testing.T) {
	original := MustMoney("1234.56")

	back, err := NewMoneyFromRat(original.Rat())
	require.NoError(t, err)
	assert.True(t, original.Equal(back))

	zero, err := NewMoneyFromRat(nil)
	require.NoError(t, err)
	assert.True(t, zero.IsZero())

	third, err := NewMoneyFromRat(big.NewRat(1, 4))
	require.NoError(t, err)
	assert.Equal(t, "0.25", third.String())
}

func TestMoney_Arithmetic(t *testing.T) {
	a := MustMoney("100.00")
	b := MustMoney("19.99")

	assert.Equal(t, "119.99", a.Add(b).String())
	assert.Equal(t, "80.01", a.Sub(b).String())
	assert.True(t, b.LessThan(a))
	assert.Equal(t, 1, a.Cmp(b))
	assert.True(t, MustMoney("1.0").Equal(MustMoney("1.00")))
}

func TestMoney_MulPercentAndRounding(t *testing.T) {
	t.Run("half rounds up", func(t *testing.T) {
		// 0.05 * 50% = 0.025 -> 0.03
		assert.Equal(t, "0.03", MustMoney("0.05").MulPercent(50).RoundHalfUp(2).String())
	})

	t.Run("below half rounds down", func(t *testing.T) {
		// 0.05 * 40% = 0.02
		assert.Equal(t, "0.02", MustMoney("0.05").MulPercent(40).RoundHalfUp(2).String())
	})

	t.Run("fractional rate", func(t *testing.T) {
		// 99.99 * 13% = 12.9987 -> 13.00
		assert.Equal(t, "13.00", MustMoney("99.99").MulPercent(13).RoundHalfUp(2).String())
	})
}

func TestMoney_HasAtMostScale(t *testing.T) {
	assert.True(t, MustMoney("10").HasAtMostScale(2))
	assert.True(t, MustMoney("10.5").HasAtMostScale(2))
	assert.True(t, MustMoney("10.55").HasAtMostScale(2))
	assert.True(t, MustMoney("10.550").HasAtMostScale(2))
	assert.False(t, MustMoney("10.555").HasAtMostScale(2))
}

func TestMoney_JSON(t *testing.T) {
	b, err := json.Marshal(MustMoney("80"))
	require.NoError(t, err)
	assert.Equal(t, `"80.00"`, string(b))

	var quoted Money
	require.NoError(t, json.Unmarshal([]byte(`"12.34"`), &quoted))
	assert.Equal(t, "12.34", quoted.String())

	var bare Money
	require.NoError(t, json.Unmarshal([]byte(`12.3`), &bare))
	assert.Equal(t, "12.30", bare.String())
}
