package contract

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOne(t *testing.T) {
	testCases := []struct {
		name     string
		currency string
		wantErr  bool
	}{
		{"valid", "EUR", false},
		{"empty", "", true},
		{"blank", "   ", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			one, err := NewOne(tc.currency)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, IsInvalidTerm(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.currency, one.Currency)
		})
	}
}

func TestConstFromFloat(t *testing.T) {
	testCases := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{"integer", 1000000, false},
		{"fraction", 123.45, false},
		{"negative", -3.5, false},
		{"nan", math.NaN(), true},
		{"positive infinity", math.Inf(1), true},
		{"negative infinity", math.Inf(-1), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := ConstFromFloat(tc.value)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, IsInvalidTerm(err))
				return
			}
			require.NoError(t, err)
			got, _ := c.Value.Float64()
			assert.InDelta(t, tc.value, got, 1e-9)
		})
	}
}

func TestNewQuantity(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		q, err := NewQuantity("ABC Eqty")
		require.NoError(t, err)
		assert.Equal(t, "ABC Eqty", q.Name)
	})

	t.Run("empty rejected", func(t *testing.T) {
		_, err := NewQuantity("")
		require.Error(t, err)
		assert.True(t, IsInvalidTerm(err))
	})

	t.Run("blank rejected", func(t *testing.T) {
		_, err := NewQuantity("  ")
		require.Error(t, err)
	})

	t.Run("name is NFC normalized", func(t *testing.T) {
		// "é" as combining sequence (e + U+0301) vs precomposed U+00E9.
		decomposed, err := NewQuantity("Cafe\u0301")
		require.NoError(t, err)
		precomposed, err := NewQuantity("Caf\u00e9")
		require.NoError(t, err)
		assert.Equal(t, precomposed.Name, decomposed.Name)
	})
}

func TestGive_DoubleReversalIsDistinct(t *testing.T) {
	inner := One{Currency: "EUR"}
	doubled := Give{Inner: Give{Inner: inner}}

	// Reversal is purely syntactic: Give(Give(c)) is a different term from
	// c, never simplified away.
	assert.NotEqual(t, Contract(inner), Contract(doubled))

	stats, err := Measure(doubled)
	require.NoError(t, err)
	innerStats, err := Measure(inner)
	require.NoError(t, err)
	assert.Equal(t, innerStats.Depth+2, stats.Depth)
}

func TestTerms_StructuralSharing(t *testing.T) {
	// The same sub-term may appear in several parents; trees are immutable
	// values, so sharing is safe and equality is structural.
	shared := One{Currency: "USD"}
	a := And{Left: shared, Right: shared}
	b := And{Left: One{Currency: "USD"}, Right: One{Currency: "USD"}}
	assert.Equal(t, a, b)
}
