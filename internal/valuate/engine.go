// Package valuate declares the numerical valuation backend of the contract
// algebra.
//
// The Engine is the second interpretation the algebra was designed to
// support: it implements the same capability interfaces as the printer, so
// adding numerical valuation required no change to the variant types in
// internal/contract.
//
// The numerics themselves are not implemented yet. Every variant method
// returns a NOT_IMPLEMENTED TermError naming the variant, routed through
// the same dispatch path a finished engine will use. The interface
// surface - twelve methods over path vectors plus an injected PathModel -
// is the contract offered to the eventual Monte-Carlo implementation.
// Parallel evaluation (partitioning paths across workers) will live
// entirely inside this package; the grammar and dispatchers stay
// single-threaded and side-effect-free.
package valuate

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/roark/covenant/internal/contract"
)

// PathModel supplies simulated per-path values for named market quantities.
// It is the collaborator a valuation engine is constructed around: the core
// algebra never resolves a quantity itself.
//
// The shape and statistics of the samples (process choice, calibration,
// discounting) are the model's concern, not the engine's.
type PathModel interface {
	// Paths returns the number of simulated paths. Every slice returned by
	// Quantity has exactly this length.
	Paths() int

	// Quantity returns one sample per path of the named quantity at the
	// current valuation instant.
	Quantity(name string) ([]float64, error)
}

// Engine evaluates a contract term into a vector of simulated values, one
// per path of the injected model.
//
// All variant methods are declared but unimplemented: each returns a
// NOT_IMPLEMENTED error naming the variant, never a default value.
type Engine struct {
	model PathModel
}

// NewEngine creates a valuation engine around a path model.
func NewEngine(model PathModel) *Engine {
	return &Engine{model: model}
}

// Model returns the injected path model.
func (e *Engine) Model() PathModel {
	return e.model
}

// Value evaluates a contract term through the contract dispatcher.
func (e *Engine) Value(c contract.Contract) ([]float64, error) {
	return contract.Dispatch[[]float64](c, e)
}

// Observe evaluates an observable term through the observable dispatcher.
func (e *Engine) Observe(o contract.Observable) ([]float64, error) {
	return contract.DispatchObservable[[]float64](o, e)
}

func (e *Engine) Zero() ([]float64, error) {
	return nil, contract.NewNotImplementedError("Zero")
}

func (e *Engine) One(currency string) ([]float64, error) {
	return nil, contract.NewNotImplementedError("One")
}

func (e *Engine) Give(inner contract.Contract) ([]float64, error) {
	return nil, contract.NewNotImplementedError("Give")
}

func (e *Engine) And(left, right contract.Contract) ([]float64, error) {
	return nil, contract.NewNotImplementedError("And")
}

func (e *Engine) Or(left, right contract.Contract) ([]float64, error) {
	return nil, contract.NewNotImplementedError("Or")
}

func (e *Engine) Truncate(horizon time.Time, inner contract.Contract) ([]float64, error) {
	return nil, contract.NewNotImplementedError("Truncate")
}

func (e *Engine) Then(first, second contract.Contract) ([]float64, error) {
	return nil, contract.NewNotImplementedError("Then")
}

func (e *Engine) Scale(factor contract.Observable, inner contract.Contract) ([]float64, error) {
	return nil, contract.NewNotImplementedError("Scale")
}

func (e *Engine) Get(inner contract.Contract) ([]float64, error) {
	return nil, contract.NewNotImplementedError("Get")
}

func (e *Engine) Anytime(inner contract.Contract) ([]float64, error) {
	return nil, contract.NewNotImplementedError("Anytime")
}

func (e *Engine) Const(value decimal.Decimal) ([]float64, error) {
	return nil, contract.NewNotImplementedError("Const")
}

func (e *Engine) Quantity(name string) ([]float64, error) {
	return nil, contract.NewNotImplementedError("Quantity")
}
