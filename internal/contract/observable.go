package contract

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"
)

// Observable represents a scalar process: a quantity whose value can be
// sampled at acquisition time and used as a scaling factor.
//
// This is a sealed interface - only Const and Quantity implement it.
// The marker method pattern prevents external implementations and enables
// exhaustive dispatch in DispatchObservable.
type Observable interface {
	observableTerm() // Marker method - seals interface to this package
}

// Const is a fixed scalar observable. Its value is the same on every path
// at every instant.
//
// Decimal representation guarantees the value is finite: decimal.Decimal
// cannot encode NaN or infinities, so no finiteness check is needed after
// construction.
type Const struct {
	Value decimal.Decimal
}

func (Const) observableTerm() {}

// Quantity is a reference to a named external scalar process, such as an
// equity price or an index level. The core never resolves quantities itself;
// a valuation backend's path model supplies concrete values.
type Quantity struct {
	Name string
}

func (Quantity) observableTerm() {}

// NewConst creates a Const observable from a decimal value.
func NewConst(value decimal.Decimal) Const {
	return Const{Value: value}
}

// ConstFromFloat creates a Const observable from a float64.
// Returns an INVALID_TERM error for NaN or infinite inputs - non-finite
// scaling factors must never enter a term tree.
func ConstFromFloat(value float64) (Const, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Const{}, NewInvalidTermError("Const", "value must be finite, got %v", value)
	}
	return Const{Value: decimal.NewFromFloat(value)}, nil
}

// NewQuantity creates a Quantity observable.
//
// The name is NFC-normalized so that two spellings of the same identifier
// produce identical terms and identical renderings. Returns an INVALID_TERM
// error for empty or blank names.
func NewQuantity(name string) (Quantity, error) {
	name = norm.NFC.String(name)
	if strings.TrimSpace(name) == "" {
		return Quantity{}, NewInvalidTermError("Quantity", "name must be non-empty")
	}
	return Quantity{Name: name}, nil
}

// ObservableVisitor is the capability interface for interpretations of the
// observable algebra: one method per variant, invoked by DispatchObservable
// with the variant's fields.
//
// T is the interpretation's result type (string for the printer, a path
// vector for a valuation backend).
type ObservableVisitor[T any] interface {
	Const(value decimal.Decimal) (T, error)
	Quantity(name string) (T, error)
}

// DispatchObservable routes an observable term to the matching method of the
// given interpretation, passing the variant's fields.
//
// Returns an UNRECOGNIZED_VARIANT error for nil terms or terms outside the
// closed variant set. That branch is unreachable for terms built through
// this package's constructors; it exists so a defect upstream surfaces
// immediately instead of being coerced to a default.
func DispatchObservable[T any](o Observable, v ObservableVisitor[T]) (T, error) {
	var zero T
	if o == nil {
		return zero, NewUnrecognizedVariantError("observable", nil)
	}

	switch obs := o.(type) {
	case Const:
		return v.Const(obs.Value)
	case *Const:
		return v.Const(obs.Value)
	case Quantity:
		return v.Quantity(obs.Name)
	case *Quantity:
		return v.Quantity(obs.Name)
	default:
		return zero, NewUnrecognizedVariantError("observable", o)
	}
}
