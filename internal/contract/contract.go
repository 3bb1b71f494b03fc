package contract

import (
	"strings"
	"time"
)

// HorizonLayout is the fixed time layout shared by the printer and any
// future reader of the textual form. Horizons are rendered and parsed in
// UTC; a single fixed zone keeps renderings deterministic.
const HorizonLayout = "2006-01-02 15:04:05"

// Contract represents a composable description of financial rights and
// obligations.
//
// This is a sealed interface - only the ten variant types in this file
// implement it. Terms are finite immutable trees: every child is itself a
// well-formed Contract or Observable, and no term holds a back-reference,
// so cycles are impossible and structural sharing is safe.
type Contract interface {
	contractTerm() // Marker method - seals interface to this package
}

// Zero is the empty contract: no rights, no obligations. Terminal.
type Zero struct{}

func (Zero) contractTerm() {}

// One is the obligation to receive one unit of Currency at acquisition.
type One struct {
	Currency string
}

func (One) contractTerm() {}

// Give reverses all rights and obligations of Inner: the holder of
// Give(c) is the writer of c. Purely syntactic - Give(Give(c)) is a
// distinct term from c, never simplified.
type Give struct {
	Inner Contract
}

func (Give) contractTerm() {}

// And acquires both sub-contracts together.
type And struct {
	Left  Contract
	Right Contract
}

func (And) contractTerm() {}

// Or lets the holder choose exactly one sub-contract at acquisition.
type Or struct {
	Left  Contract
	Right Contract
}

func (Or) contractTerm() {}

// Truncate forces the acquisition of Inner to occur no later than Horizon.
type Truncate struct {
	Horizon time.Time
	Inner   Contract
}

func (Truncate) contractTerm() {}

// Then acquires First if it is still live at acquisition, else Second.
type Then struct {
	First  Contract
	Second Contract
}

func (Then) contractTerm() {}

// Scale multiplies every payoff of Inner by the value of Factor sampled at
// acquisition.
type Scale struct {
	Factor Observable
	Inner  Contract
}

func (Scale) contractTerm() {}

// Get defers the rights of Inner to its horizon: acquiring Get(c) acquires
// c at the last possible instant, converting c into its terminal value.
type Get struct {
	Inner Contract
}

func (Get) contractTerm() {}

// Anytime lets the holder acquire Inner at any instant up to its horizon.
type Anytime struct {
	Inner Contract
}

func (Anytime) contractTerm() {}

// NewOne creates a One contract. Returns an INVALID_TERM error for empty or
// blank currency codes.
func NewOne(currency string) (One, error) {
	if strings.TrimSpace(currency) == "" {
		return One{}, NewInvalidTermError("One", "currency must be non-empty")
	}
	return One{Currency: currency}, nil
}
