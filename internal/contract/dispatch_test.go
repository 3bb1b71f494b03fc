package contract

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tagger records which variant method was invoked and with which fields.
// It exists to verify that Dispatch routes every variant to the right
// method with the right arguments.
type tagger struct {
	currency string
	horizon  time.Time
	children []Contract
	factor   Observable
}

func (t *tagger) Zero() (string, error) { return "Zero", nil }

func (t *tagger) One(currency string) (string, error) {
	t.currency = currency
	return "One", nil
}

func (t *tagger) Give(inner Contract) (string, error) {
	t.children = []Contract{inner}
	return "Give", nil
}

func (t *tagger) And(left, right Contract) (string, error) {
	t.children = []Contract{left, right}
	return "And", nil
}

func (t *tagger) Or(left, right Contract) (string, error) {
	t.children = []Contract{left, right}
	return "Or", nil
}

func (t *tagger) Truncate(horizon time.Time, inner Contract) (string, error) {
	t.horizon = horizon
	t.children = []Contract{inner}
	return "Truncate", nil
}

func (t *tagger) Then(first, second Contract) (string, error) {
	t.children = []Contract{first, second}
	return "Then", nil
}

func (t *tagger) Scale(factor Observable, inner Contract) (string, error) {
	t.factor = factor
	t.children = []Contract{inner}
	return "Scale", nil
}

func (t *tagger) Get(inner Contract) (string, error) {
	t.children = []Contract{inner}
	return "Get", nil
}

func (t *tagger) Anytime(inner Contract) (string, error) {
	t.children = []Contract{inner}
	return "Anytime", nil
}

func TestDispatch_RoutesEveryVariant(t *testing.T) {
	horizon := time.Date(2030, 7, 14, 0, 0, 0, 0, time.UTC)
	leaf := One{Currency: "EUR"}
	factor := Quantity{Name: "ABC Eqty"}

	testCases := []struct {
		name string
		term Contract
		want string
	}{
		{"zero", Zero{}, "Zero"},
		{"one", leaf, "One"},
		{"give", Give{Inner: leaf}, "Give"},
		{"and", And{Left: leaf, Right: Zero{}}, "And"},
		{"or", Or{Left: leaf, Right: Zero{}}, "Or"},
		{"truncate", Truncate{Horizon: horizon, Inner: leaf}, "Truncate"},
		{"then", Then{First: leaf, Second: Zero{}}, "Then"},
		{"scale", Scale{Factor: factor, Inner: leaf}, "Scale"},
		{"get", Get{Inner: leaf}, "Get"},
		{"anytime", Anytime{Inner: leaf}, "Anytime"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := &tagger{}
			got, err := Dispatch[string](tc.term, v)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDispatch_RoutesPointerVariants(t *testing.T) {
	v := &tagger{}

	got, err := Dispatch[string](&Give{Inner: Zero{}}, v)
	require.NoError(t, err)
	assert.Equal(t, "Give", got)
	require.Len(t, v.children, 1)
	assert.Equal(t, Zero{}, v.children[0])
}

func TestDispatch_PassesVariantFields(t *testing.T) {
	horizon := time.Date(2030, 7, 14, 0, 0, 0, 0, time.UTC)

	t.Run("one carries currency", func(t *testing.T) {
		v := &tagger{}
		_, err := Dispatch[string](One{Currency: "USD"}, v)
		require.NoError(t, err)
		assert.Equal(t, "USD", v.currency)
	})

	t.Run("truncate carries horizon and child", func(t *testing.T) {
		v := &tagger{}
		_, err := Dispatch[string](Truncate{Horizon: horizon, Inner: Zero{}}, v)
		require.NoError(t, err)
		assert.True(t, v.horizon.Equal(horizon))
		require.Len(t, v.children, 1)
	})

	t.Run("and carries children in order", func(t *testing.T) {
		v := &tagger{}
		_, err := Dispatch[string](And{Left: One{Currency: "EUR"}, Right: Zero{}}, v)
		require.NoError(t, err)
		require.Len(t, v.children, 2)
		assert.Equal(t, One{Currency: "EUR"}, v.children[0])
		assert.Equal(t, Zero{}, v.children[1])
	})

	t.Run("scale carries factor and child", func(t *testing.T) {
		v := &tagger{}
		_, err := Dispatch[string](Scale{Factor: Quantity{Name: "X"}, Inner: Zero{}}, v)
		require.NoError(t, err)
		assert.Equal(t, Quantity{Name: "X"}, v.factor)
	})
}

func TestDispatch_NilTerm(t *testing.T) {
	_, err := Dispatch[string](nil, &tagger{})
	require.Error(t, err)
	assert.True(t, IsUnrecognizedVariant(err))
}

// obsTagger verifies observable routing.
type obsTagger struct {
	value decimal.Decimal
	name  string
}

func (o *obsTagger) Const(value decimal.Decimal) (string, error) {
	o.value = value
	return "Const", nil
}

func (o *obsTagger) Quantity(name string) (string, error) {
	o.name = name
	return "Quantity", nil
}

func TestDispatchObservable_RoutesVariants(t *testing.T) {
	v := &obsTagger{}

	got, err := DispatchObservable[string](Const{Value: decimal.RequireFromString("123.45")}, v)
	require.NoError(t, err)
	assert.Equal(t, "Const", got)
	assert.Equal(t, "123.45", v.value.String())

	got, err = DispatchObservable[string](Quantity{Name: "ABC Eqty"}, v)
	require.NoError(t, err)
	assert.Equal(t, "Quantity", got)
	assert.Equal(t, "ABC Eqty", v.name)

	got, err = DispatchObservable[string](&Quantity{Name: "DEF"}, v)
	require.NoError(t, err)
	assert.Equal(t, "Quantity", got)
}

func TestDispatchObservable_NilTerm(t *testing.T) {
	_, err := DispatchObservable[string](nil, &obsTagger{})
	require.Error(t, err)
	assert.True(t, IsUnrecognizedVariant(err))
}
