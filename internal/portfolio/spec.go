package portfolio

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/roark/covenant/internal/contract"
)

// Decode targets for the CUE portfolio schema. Each contract entry carries
// exactly one of the combinator templates or a structural term; the build
// functions below enforce that and convert the decoded specs into validated
// contract terms, so a malformed definition never becomes a tree.

type portfolioSpec struct {
	Name      string      `json:"name"`
	Contracts []entrySpec `json:"contracts"`
}

type entrySpec struct {
	Name           string        `json:"name"`
	ZeroCouponBond *zcbSpec      `json:"zeroCouponBond"`
	European       *europeanSpec `json:"european"`
	EuropeanPut    *putSpec      `json:"europeanPut"`
	Term           *termSpec     `json:"term"`
}

type zcbSpec struct {
	Maturity string `json:"maturity"`
	Notional string `json:"notional"`
	Currency string `json:"currency"`
}

type europeanSpec struct {
	Maturity string    `json:"maturity"`
	Term     *termSpec `json:"term"`
}

type putSpec struct {
	Ticker   string `json:"ticker"`
	Currency string `json:"currency"`
	Maturity string `json:"maturity"`
	Strike   string `json:"strike"`
}

// termSpec mirrors the ten contract variants structurally. Exactly one
// field must be set.
type termSpec struct {
	Zero     *struct{}       `json:"zero"`
	One      *oneSpec        `json:"one"`
	Give     *termSpec       `json:"give"`
	And      *pairSpec       `json:"and"`
	Or       *pairSpec       `json:"or"`
	Truncate *truncateSpec   `json:"truncate"`
	Then     *thenSpec       `json:"then"`
	Scale    *scaleSpec      `json:"scale"`
	Get      *termSpec       `json:"get"`
	Anytime  *termSpec       `json:"anytime"`
}

type oneSpec struct {
	Currency string `json:"currency"`
}

type pairSpec struct {
	Left  *termSpec `json:"left"`
	Right *termSpec `json:"right"`
}

type truncateSpec struct {
	Horizon string    `json:"horizon"`
	Inner   *termSpec `json:"inner"`
}

type thenSpec struct {
	First  *termSpec `json:"first"`
	Second *termSpec `json:"second"`
}

type scaleSpec struct {
	Factor *observableSpec `json:"factor"`
	Inner  *termSpec       `json:"inner"`
}

// observableSpec mirrors the two observable variants. Exactly one field
// must be set.
type observableSpec struct {
	Const    *string `json:"const"`
	Quantity *string `json:"quantity"`
}

// buildEntry converts one decoded contract entry into a term.
func buildEntry(e entrySpec) (contract.Contract, error) {
	if e.Name == "" {
		return nil, fmt.Errorf("contract entry has no name")
	}

	set := 0
	for _, present := range []bool{
		e.ZeroCouponBond != nil,
		e.European != nil,
		e.EuropeanPut != nil,
		e.Term != nil,
	} {
		if present {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("contract %q: exactly one of zeroCouponBond, european, europeanPut, term must be set (got %d)", e.Name, set)
	}

	switch {
	case e.ZeroCouponBond != nil:
		return buildZeroCouponBond(e.Name, e.ZeroCouponBond)
	case e.European != nil:
		return buildEuropean(e.Name, e.European)
	case e.EuropeanPut != nil:
		return buildEuropeanPut(e.Name, e.EuropeanPut)
	default:
		return buildTerm(e.Name+".term", e.Term)
	}
}

func buildZeroCouponBond(name string, s *zcbSpec) (contract.Contract, error) {
	maturity, err := parseHorizon(name+".zeroCouponBond.maturity", s.Maturity)
	if err != nil {
		return nil, err
	}
	notional, err := parseDecimal(name+".zeroCouponBond.notional", s.Notional)
	if err != nil {
		return nil, err
	}
	c, err := contract.ZeroCouponBond(maturity, notional, s.Currency)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return c, nil
}

func buildEuropean(name string, s *europeanSpec) (contract.Contract, error) {
	maturity, err := parseHorizon(name+".european.maturity", s.Maturity)
	if err != nil {
		return nil, err
	}
	underlying, err := buildTerm(name+".european.term", s.Term)
	if err != nil {
		return nil, err
	}
	return contract.European(maturity, underlying), nil
}

func buildEuropeanPut(name string, s *putSpec) (contract.Contract, error) {
	maturity, err := parseHorizon(name+".europeanPut.maturity", s.Maturity)
	if err != nil {
		return nil, err
	}
	strike, err := parseDecimal(name+".europeanPut.strike", s.Strike)
	if err != nil {
		return nil, err
	}
	c, err := contract.EuropeanPut(s.Ticker, s.Currency, maturity, strike)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return c, nil
}

// buildTerm converts a structural term spec into a contract term.
// path identifies the node for error messages, e.g. "book.term.give".
func buildTerm(path string, s *termSpec) (contract.Contract, error) {
	if s == nil {
		return nil, fmt.Errorf("%s: term must be set", path)
	}

	set := 0
	for _, present := range []bool{
		s.Zero != nil, s.One != nil, s.Give != nil, s.And != nil, s.Or != nil,
		s.Truncate != nil, s.Then != nil, s.Scale != nil, s.Get != nil, s.Anytime != nil,
	} {
		if present {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("%s: exactly one variant must be set (got %d)", path, set)
	}

	switch {
	case s.Zero != nil:
		return contract.Zero{}, nil

	case s.One != nil:
		one, err := contract.NewOne(s.One.Currency)
		if err != nil {
			return nil, fmt.Errorf("%s.one: %w", path, err)
		}
		return one, nil

	case s.Give != nil:
		inner, err := buildTerm(path+".give", s.Give)
		if err != nil {
			return nil, err
		}
		return contract.Give{Inner: inner}, nil

	case s.And != nil:
		left, right, err := buildPair(path+".and", s.And)
		if err != nil {
			return nil, err
		}
		return contract.And{Left: left, Right: right}, nil

	case s.Or != nil:
		left, right, err := buildPair(path+".or", s.Or)
		if err != nil {
			return nil, err
		}
		return contract.Or{Left: left, Right: right}, nil

	case s.Truncate != nil:
		horizon, err := parseHorizon(path+".truncate.horizon", s.Truncate.Horizon)
		if err != nil {
			return nil, err
		}
		inner, err := buildTerm(path+".truncate.inner", s.Truncate.Inner)
		if err != nil {
			return nil, err
		}
		return contract.Truncate{Horizon: horizon, Inner: inner}, nil

	case s.Then != nil:
		first, err := buildTerm(path+".then.first", s.Then.First)
		if err != nil {
			return nil, err
		}
		second, err := buildTerm(path+".then.second", s.Then.Second)
		if err != nil {
			return nil, err
		}
		return contract.Then{First: first, Second: second}, nil

	case s.Scale != nil:
		factor, err := buildObservable(path+".scale.factor", s.Scale.Factor)
		if err != nil {
			return nil, err
		}
		inner, err := buildTerm(path+".scale.inner", s.Scale.Inner)
		if err != nil {
			return nil, err
		}
		return contract.Scale{Factor: factor, Inner: inner}, nil

	case s.Get != nil:
		inner, err := buildTerm(path+".get", s.Get)
		if err != nil {
			return nil, err
		}
		return contract.Get{Inner: inner}, nil

	default:
		inner, err := buildTerm(path+".anytime", s.Anytime)
		if err != nil {
			return nil, err
		}
		return contract.Anytime{Inner: inner}, nil
	}
}

func buildPair(path string, s *pairSpec) (contract.Contract, contract.Contract, error) {
	left, err := buildTerm(path+".left", s.Left)
	if err != nil {
		return nil, nil, err
	}
	right, err := buildTerm(path+".right", s.Right)
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

func buildObservable(path string, s *observableSpec) (contract.Observable, error) {
	if s == nil {
		return nil, fmt.Errorf("%s: factor must be set", path)
	}
	if (s.Const != nil) == (s.Quantity != nil) {
		return nil, fmt.Errorf("%s: exactly one of const, quantity must be set", path)
	}
	if s.Const != nil {
		value, err := parseDecimal(path+".const", *s.Const)
		if err != nil {
			return nil, err
		}
		return contract.NewConst(value), nil
	}
	q, err := contract.NewQuantity(*s.Quantity)
	if err != nil {
		return nil, fmt.Errorf("%s.quantity: %w", path, err)
	}
	return q, nil
}

func parseHorizon(path, s string) (time.Time, error) {
	t, err := time.ParseInLocation(contract.HorizonLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: horizon %q does not match layout %q", path, s, contract.HorizonLayout)
	}
	return t, nil
}

func parseDecimal(path, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%s: invalid decimal %q", path, s)
	}
	return d, nil
}
