package contract

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var maturity = time.Date(2030, 7, 14, 0, 0, 0, 0, time.UTC)

func TestScaledConstant(t *testing.T) {
	c := ScaledConstant(decimal.NewFromInt(42), Zero{})

	scale, ok := c.(Scale)
	require.True(t, ok)
	assert.Equal(t, Const{Value: decimal.NewFromInt(42)}, scale.Factor)
	assert.Equal(t, Zero{}, scale.Inner)
}

func TestZeroCouponBond_Structure(t *testing.T) {
	c, err := ZeroCouponBond(maturity, decimal.NewFromInt(1000000), "EUR")
	require.NoError(t, err)

	scale, ok := c.(Scale)
	require.True(t, ok)
	get, ok := scale.Inner.(Get)
	require.True(t, ok)
	trunc, ok := get.Inner.(Truncate)
	require.True(t, ok)
	assert.True(t, trunc.Horizon.Equal(maturity))
	assert.Equal(t, One{Currency: "EUR"}, trunc.Inner)
}

func TestZeroCouponBond_EmptyCurrency(t *testing.T) {
	_, err := ZeroCouponBond(maturity, decimal.NewFromInt(1), "")
	require.Error(t, err)
	assert.True(t, IsInvalidTerm(err))
}

func TestEuropean_Structure(t *testing.T) {
	underlying := One{Currency: "GBP"}
	c := European(maturity, underlying)

	get, ok := c.(Get)
	require.True(t, ok)
	trunc, ok := get.Inner.(Truncate)
	require.True(t, ok)
	or, ok := trunc.Inner.(Or)
	require.True(t, ok)
	assert.Equal(t, Contract(underlying), or.Left)
	assert.Equal(t, Contract(Zero{}), or.Right)
}

func TestEuropean_ComposesWithoutFlattening(t *testing.T) {
	base := One{Currency: "EUR"}
	once := European(maturity, base)
	twice := European(maturity, once)

	onceStats, err := Measure(once)
	require.NoError(t, err)
	twiceStats, err := Measure(twice)
	require.NoError(t, err)

	assert.Greater(t, twiceStats.Depth, onceStats.Depth)
	assert.Greater(t, twiceStats.Nodes, onceStats.Nodes)
}

func TestEuropeanPut_Structure(t *testing.T) {
	c, err := EuropeanPut("ABC Eqty", "USD", maturity, decimal.RequireFromString("123.45"))
	require.NoError(t, err)

	get, ok := c.(Get)
	require.True(t, ok)
	trunc, ok := get.Inner.(Truncate)
	require.True(t, ok)
	or, ok := trunc.Inner.(Or)
	require.True(t, ok)

	underlying, ok := or.Left.(Scale)
	require.True(t, ok)
	assert.Equal(t, Observable(Quantity{Name: "ABC Eqty"}), underlying.Factor)
	assert.Equal(t, Contract(One{Currency: "USD"}), underlying.Inner)

	strike, ok := or.Right.(Scale)
	require.True(t, ok)
	assert.Equal(t, Observable(Const{Value: decimal.RequireFromString("123.45")}), strike.Factor)
	assert.Equal(t, Contract(One{Currency: "USD"}), strike.Inner)
}

func TestEuropeanPut_InvalidInputs(t *testing.T) {
	strike := decimal.RequireFromString("1")

	_, err := EuropeanPut("", "USD", maturity, strike)
	require.Error(t, err)
	assert.True(t, IsInvalidTerm(err))

	_, err = EuropeanPut("ABC", "", maturity, strike)
	require.Error(t, err)
	assert.True(t, IsInvalidTerm(err))
}

func TestMeasure_KnownShapes(t *testing.T) {
	zcb, err := ZeroCouponBond(maturity, decimal.NewFromInt(1000000), "EUR")
	require.NoError(t, err)
	put, err := EuropeanPut("ABC Eqty", "USD", maturity, decimal.RequireFromString("123.45"))
	require.NoError(t, err)

	testCases := []struct {
		name string
		term Contract
		want Stats
	}{
		{"zero", Zero{}, Stats{Depth: 1, Nodes: 1}},
		{"one", One{Currency: "EUR"}, Stats{Depth: 1, Nodes: 1}},
		{"and of leaves", And{Left: Zero{}, Right: One{Currency: "EUR"}}, Stats{Depth: 2, Nodes: 3}},
		{"zero coupon bond", zcb, Stats{Depth: 4, Nodes: 5}},
		{"european put", put, Stats{Depth: 5, Nodes: 9}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Measure(tc.term)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMeasure_NilChild(t *testing.T) {
	_, err := Measure(Give{Inner: nil})
	require.Error(t, err)
	assert.True(t, IsUnrecognizedVariant(err))
}
