package contract

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Derived combinators: named templates that assemble contract terms out of
// the primitive variants. They add no new dispatch behavior and never
// inspect market data - a quantity referenced here is resolved only by a
// valuation backend's path model.

// ScaledConstant scales a contract by a fixed decimal amount.
//
//	ScaledConstant(k, c) = Scale(Const(k), c)
func ScaledConstant(amount decimal.Decimal, inner Contract) Contract {
	return Scale{Factor: Const{Value: amount}, Inner: inner}
}

// ZeroCouponBond pays the notional amount of the given currency at maturity.
//
//	ZeroCouponBond(t, n, ccy) = Scale(Const(n), Get(Truncate(t, One(ccy))))
func ZeroCouponBond(maturity time.Time, notional decimal.Decimal, currency string) (Contract, error) {
	one, err := NewOne(currency)
	if err != nil {
		return nil, fmt.Errorf("zero coupon bond: %w", err)
	}
	return ScaledConstant(notional, Get{Inner: Truncate{Horizon: maturity, Inner: one}}), nil
}

// European wraps a contract as a European option exercised at maturity: the
// holder receives the underlying contract or nothing.
//
//	European(t, c) = Get(Truncate(t, Or(c, Zero)))
//
// Applying European twice nests the template; combinators compose without
// flattening.
func European(maturity time.Time, underlying Contract) Contract {
	return Get{Inner: Truncate{Horizon: maturity, Inner: Or{Left: underlying, Right: Zero{}}}}
}

// EuropeanPut is a European put option: at maturity the holder chooses
// between one unit of the underlying quantity and the strike amount, both
// in the given currency.
//
//	EuropeanPut(q, ccy, t, k) =
//	  Get(Truncate(t, Or(Scale(Quantity(q), One(ccy)), Scale(Const(k), One(ccy)))))
func EuropeanPut(ticker, currency string, maturity time.Time, strike decimal.Decimal) (Contract, error) {
	quantity, err := NewQuantity(ticker)
	if err != nil {
		return nil, fmt.Errorf("european put: %w", err)
	}
	one, err := NewOne(currency)
	if err != nil {
		return nil, fmt.Errorf("european put: %w", err)
	}
	return Get{Inner: Truncate{
		Horizon: maturity,
		Inner: Or{
			Left:  Scale{Factor: quantity, Inner: one},
			Right: ScaledConstant(strike, one),
		},
	}}, nil
}
