package contract

import "time"

// Visitor is the capability interface for interpretations of the contract
// algebra: one method per variant, invoked by Dispatch with the variant's
// fields in declaration order.
//
// The interface is total over the closed variant set. An interpretation that
// has not yet implemented a variant must return a NOT_IMPLEMENTED TermError
// naming the variant (see NewNotImplementedError); it must never silently
// return a default.
//
// T is the interpretation's result type. The printer instantiates T=string;
// a numerical valuation backend instantiates T as a vector of simulated
// path values.
type Visitor[T any] interface {
	Zero() (T, error)
	One(currency string) (T, error)
	Give(inner Contract) (T, error)
	And(left, right Contract) (T, error)
	Or(left, right Contract) (T, error)
	Truncate(horizon time.Time, inner Contract) (T, error)
	Then(first, second Contract) (T, error)
	Scale(factor Observable, inner Contract) (T, error)
	Get(inner Contract) (T, error)
	Anytime(inner Contract) (T, error)
}

// Dispatch routes a contract term to the matching method of the given
// interpretation, passing the variant's fields. Interpretations recurse
// into child terms by calling Dispatch again, giving a left-to-right
// depth-first traversal with no hidden state.
//
// Dispatch itself performs no recovery: any error from the invoked method
// aborts the traversal and propagates to the caller.
//
// Returns an UNRECOGNIZED_VARIANT error for nil terms or terms outside the
// closed variant set - unreachable for terms built through this package's
// constructors, surfaced immediately rather than coerced when a defect
// upstream produces one.
func Dispatch[T any](c Contract, v Visitor[T]) (T, error) {
	var zero T
	if c == nil {
		return zero, NewUnrecognizedVariantError("contract", nil)
	}

	switch t := c.(type) {
	case Zero:
		return v.Zero()
	case *Zero:
		return v.Zero()
	case One:
		return v.One(t.Currency)
	case *One:
		return v.One(t.Currency)
	case Give:
		return v.Give(t.Inner)
	case *Give:
		return v.Give(t.Inner)
	case And:
		return v.And(t.Left, t.Right)
	case *And:
		return v.And(t.Left, t.Right)
	case Or:
		return v.Or(t.Left, t.Right)
	case *Or:
		return v.Or(t.Left, t.Right)
	case Truncate:
		return v.Truncate(t.Horizon, t.Inner)
	case *Truncate:
		return v.Truncate(t.Horizon, t.Inner)
	case Then:
		return v.Then(t.First, t.Second)
	case *Then:
		return v.Then(t.First, t.Second)
	case Scale:
		return v.Scale(t.Factor, t.Inner)
	case *Scale:
		return v.Scale(t.Factor, t.Inner)
	case Get:
		return v.Get(t.Inner)
	case *Get:
		return v.Get(t.Inner)
	case Anytime:
		return v.Anytime(t.Inner)
	case *Anytime:
		return v.Anytime(t.Inner)
	default:
		return zero, NewUnrecognizedVariantError("contract", c)
	}
}
