// Package render implements the textual interpretation of the contract
// algebra: a canonical parenthesized prefix rendering of a term.
//
// The printer is one backend of the capability interfaces defined in
// internal/contract; the valuation engine in internal/valuate is another.
// Neither requires any change to the variant types.
package render

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/roark/covenant/internal/contract"
)

// Printer renders contract terms as parenthesized prefix notation:
//
//	scale 1000000 (get (truncate "2030-07-14 00:00:00" (one EUR)))
//
// Rendering is a pure function of the term: left-to-right depth-first
// recursion, no hidden state, so two renders of the same tree are always
// identical. Output is ASCII-safe with no trailing whitespace.
//
// The observable interpretation used for scale factors is injected; the
// zero value of Printer is not usable, construct with NewPrinter.
type Printer struct {
	obs contract.ObservableVisitor[string]
}

// NewPrinter creates a Printer with the default observable rendering
// (bare decimals for constants, double-quoted names for quantities).
func NewPrinter() *Printer {
	return &Printer{obs: ObservablePrinter{}}
}

// NewPrinterWithObservable creates a Printer with a custom observable
// interpretation for scale factors.
func NewPrinterWithObservable(obs contract.ObservableVisitor[string]) *Printer {
	return &Printer{obs: obs}
}

// Render produces the canonical textual form of a contract term.
func (p *Printer) Render(c contract.Contract) (string, error) {
	return contract.Dispatch[string](c, p)
}

// RenderObservable produces the textual form of an observable term using
// the printer's injected observable interpretation.
func (p *Printer) RenderObservable(o contract.Observable) (string, error) {
	return contract.DispatchObservable[string](o, p.obs)
}

func (p *Printer) Zero() (string, error) {
	return "zero", nil
}

func (p *Printer) One(currency string) (string, error) {
	return "one " + currency, nil
}

func (p *Printer) Give(inner contract.Contract) (string, error) {
	s, err := p.Render(inner)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("give (%s)", s), nil
}

func (p *Printer) And(left, right contract.Contract) (string, error) {
	return p.binary("and", left, right)
}

func (p *Printer) Or(left, right contract.Contract) (string, error) {
	return p.binary("or", left, right)
}

func (p *Printer) Truncate(horizon time.Time, inner contract.Contract) (string, error) {
	s, err := p.Render(inner)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("truncate %q (%s)", horizon.UTC().Format(contract.HorizonLayout), s), nil
}

func (p *Printer) Then(first, second contract.Contract) (string, error) {
	return p.binary("then", first, second)
}

func (p *Printer) Scale(factor contract.Observable, inner contract.Contract) (string, error) {
	f, err := contract.DispatchObservable[string](factor, p.obs)
	if err != nil {
		return "", err
	}
	s, err := p.Render(inner)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("scale %s (%s)", f, s), nil
}

func (p *Printer) Get(inner contract.Contract) (string, error) {
	s, err := p.Render(inner)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("get (%s)", s), nil
}

func (p *Printer) Anytime(inner contract.Contract) (string, error) {
	s, err := p.Render(inner)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("anytime (%s)", s), nil
}

// binary renders the two-child variants, left child first.
func (p *Printer) binary(name string, left, right contract.Contract) (string, error) {
	l, err := p.Render(left)
	if err != nil {
		return "", err
	}
	r, err := p.Render(right)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s (%s) (%s)", name, l, r), nil
}

// ObservablePrinter is the default textual interpretation of the observable
// algebra. Constants render with decimal's default representation (no
// exponent for typical magnitudes, no trailing zeros); quantity names are
// double-quoted so names containing spaces survive re-parsing.
type ObservablePrinter struct{}

func (ObservablePrinter) Const(value decimal.Decimal) (string, error) {
	return value.String(), nil
}

func (ObservablePrinter) Quantity(name string) (string, error) {
	return strconv.Quote(name), nil
}
