package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ValidationResult contains the outcome of re-checking a whole term tree.
type ValidationResult struct {
	// Valid is true when every node satisfies its construction invariants.
	Valid bool

	// Issues lists the violations found. Empty when Valid is true.
	Issues []string
}

// Validate re-checks construction invariants over an entire contract tree:
// non-empty currencies and quantity names, non-zero horizons, no nil
// children, no terms outside the closed variant sets.
//
// Terms built through this package's constructors and combinators always
// pass. Validate exists for terms assembled from struct literals or decoded
// from external definitions, where the constructors were bypassed.
//
// Validate is a pure function with no side effects. It is itself an
// interpretation of the algebra, implemented against the same capability
// interfaces as the printer and the valuation engine.
func Validate(c Contract) ValidationResult {
	v := &validator{}
	v.checkContract(c)
	return ValidationResult{
		Valid:  len(v.issues) == 0,
		Issues: v.issues,
	}
}

// validator accumulates issues during traversal. Visitor methods always
// return a nil error; violations are collected rather than aborting, so a
// single pass reports every problem in the tree.
type validator struct {
	issues []string
}

func (v *validator) add(format string, args ...any) {
	v.issues = append(v.issues, fmt.Sprintf(format, args...))
}

func (v *validator) checkContract(c Contract) {
	if c == nil {
		v.add("nil contract term")
		return
	}
	if _, err := Dispatch[struct{}](c, v); err != nil {
		v.add("%v", err)
	}
}

func (v *validator) checkObservable(o Observable) {
	if o == nil {
		v.add("nil observable term")
		return
	}
	if _, err := DispatchObservable[struct{}](o, v); err != nil {
		v.add("%v", err)
	}
}

func (v *validator) Zero() (struct{}, error) {
	return struct{}{}, nil
}

func (v *validator) One(currency string) (struct{}, error) {
	if strings.TrimSpace(currency) == "" {
		v.add("one: currency must be non-empty")
	}
	return struct{}{}, nil
}

func (v *validator) Give(inner Contract) (struct{}, error) {
	v.checkContract(inner)
	return struct{}{}, nil
}

func (v *validator) And(left, right Contract) (struct{}, error) {
	v.checkContract(left)
	v.checkContract(right)
	return struct{}{}, nil
}

func (v *validator) Or(left, right Contract) (struct{}, error) {
	v.checkContract(left)
	v.checkContract(right)
	return struct{}{}, nil
}

func (v *validator) Truncate(horizon time.Time, inner Contract) (struct{}, error) {
	if horizon.IsZero() {
		v.add("truncate: horizon must be set")
	}
	v.checkContract(inner)
	return struct{}{}, nil
}

func (v *validator) Then(first, second Contract) (struct{}, error) {
	v.checkContract(first)
	v.checkContract(second)
	return struct{}{}, nil
}

func (v *validator) Scale(factor Observable, inner Contract) (struct{}, error) {
	v.checkObservable(factor)
	v.checkContract(inner)
	return struct{}{}, nil
}

func (v *validator) Get(inner Contract) (struct{}, error) {
	v.checkContract(inner)
	return struct{}{}, nil
}

func (v *validator) Anytime(inner Contract) (struct{}, error) {
	v.checkContract(inner)
	return struct{}{}, nil
}

func (v *validator) Const(value decimal.Decimal) (struct{}, error) {
	// Decimal values are finite by construction; nothing to check.
	return struct{}{}, nil
}

func (v *validator) Quantity(name string) (struct{}, error) {
	if strings.TrimSpace(name) == "" {
		v.add("quantity: name must be non-empty")
	}
	return struct{}{}, nil
}
