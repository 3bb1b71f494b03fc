package contract

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_WellFormedTerms(t *testing.T) {
	horizon := time.Date(2030, 7, 14, 0, 0, 0, 0, time.UTC)
	zcb, err := ZeroCouponBond(horizon, decimal.NewFromInt(1000000), "EUR")
	require.NoError(t, err)
	put, err := EuropeanPut("ABC Eqty", "USD", horizon, decimal.RequireFromString("123.45"))
	require.NoError(t, err)

	testCases := []struct {
		name string
		term Contract
	}{
		{"zero", Zero{}},
		{"one", One{Currency: "EUR"}},
		{"zero coupon bond", zcb},
		{"european put", put},
		{"nested give", Give{Inner: Give{Inner: Zero{}}}},
		{"then", Then{First: Zero{}, Second: One{Currency: "JPY"}}},
		{"anytime", Anytime{Inner: Truncate{Horizon: horizon, Inner: Zero{}}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := Validate(tc.term)
			assert.True(t, result.Valid)
			assert.Empty(t, result.Issues)
		})
	}
}

func TestValidate_ReportsViolations(t *testing.T) {
	horizon := time.Date(2030, 7, 14, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name      string
		term      Contract
		wantIssue string
	}{
		{"nil term", nil, "nil contract term"},
		{"empty currency", One{}, "currency must be non-empty"},
		{"nil give child", Give{}, "nil contract term"},
		{"nil and children", And{}, "nil contract term"},
		{"zero horizon", Truncate{Inner: Zero{}}, "horizon must be set"},
		{"nil scale factor", Scale{Inner: Zero{}}, "nil observable term"},
		{"empty quantity name", Scale{Factor: Quantity{}, Inner: Zero{}}, "name must be non-empty"},
		{"violation below the root", Get{Inner: Truncate{Horizon: horizon, Inner: One{}}}, "currency must be non-empty"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := Validate(tc.term)
			require.False(t, result.Valid)

			found := false
			for _, issue := range result.Issues {
				if strings.Contains(issue, tc.wantIssue) {
					found = true
					break
				}
			}
			assert.True(t, found, "expected an issue containing %q, got %v", tc.wantIssue, result.Issues)
		})
	}
}

func TestValidate_CollectsAllIssues(t *testing.T) {
	// One pass reports every problem, not just the first.
	term := And{
		Left:  One{},                                 // empty currency
		Right: Scale{Factor: Quantity{}, Inner: nil}, // empty name AND nil child
	}

	result := Validate(term)
	require.False(t, result.Valid)
	assert.Len(t, result.Issues, 3)
}
