package contract

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stats summarizes the shape of a term tree.
type Stats struct {
	// Depth is the length of the longest root-to-leaf chain of contract
	// variants. A terminal (Zero, One) has depth 1.
	Depth int

	// Nodes counts every variant in the tree, observables included.
	Nodes int
}

// Measure computes the depth and node count of a contract tree.
//
// Like the printer, Measure is an interpretation: it dispatches through the
// same capability interfaces, so it fails with UNRECOGNIZED_VARIANT on the
// same malformed inputs rather than guessing.
func Measure(c Contract) (Stats, error) {
	return Dispatch[Stats](c, measurer{})
}

type measurer struct{}

func (m measurer) child(c Contract) (Stats, error) {
	return Dispatch[Stats](c, m)
}

// over wraps a single child under one more contract node.
func (m measurer) over(inner Contract) (Stats, error) {
	s, err := m.child(inner)
	if err != nil {
		return Stats{}, err
	}
	return Stats{Depth: s.Depth + 1, Nodes: s.Nodes + 1}, nil
}

// pair wraps two children under one more contract node.
func (m measurer) pair(a, b Contract) (Stats, error) {
	sa, err := m.child(a)
	if err != nil {
		return Stats{}, err
	}
	sb, err := m.child(b)
	if err != nil {
		return Stats{}, err
	}
	return Stats{Depth: max(sa.Depth, sb.Depth) + 1, Nodes: sa.Nodes + sb.Nodes + 1}, nil
}

func (measurer) Zero() (Stats, error) {
	return Stats{Depth: 1, Nodes: 1}, nil
}

func (measurer) One(currency string) (Stats, error) {
	return Stats{Depth: 1, Nodes: 1}, nil
}

func (m measurer) Give(inner Contract) (Stats, error) {
	return m.over(inner)
}

func (m measurer) And(left, right Contract) (Stats, error) {
	return m.pair(left, right)
}

func (m measurer) Or(left, right Contract) (Stats, error) {
	return m.pair(left, right)
}

func (m measurer) Truncate(horizon time.Time, inner Contract) (Stats, error) {
	return m.over(inner)
}

func (m measurer) Then(first, second Contract) (Stats, error) {
	return m.pair(first, second)
}

func (m measurer) Scale(factor Observable, inner Contract) (Stats, error) {
	obs, err := DispatchObservable[Stats](factor, m)
	if err != nil {
		return Stats{}, err
	}
	s, err := m.child(inner)
	if err != nil {
		return Stats{}, err
	}
	return Stats{Depth: s.Depth + 1, Nodes: s.Nodes + obs.Nodes + 1}, nil
}

func (m measurer) Get(inner Contract) (Stats, error) {
	return m.over(inner)
}

func (m measurer) Anytime(inner Contract) (Stats, error) {
	return m.over(inner)
}

func (measurer) Const(value decimal.Decimal) (Stats, error) {
	return Stats{Depth: 1, Nodes: 1}, nil
}

func (measurer) Quantity(name string) (Stats, error) {
	return Stats{Depth: 1, Nodes: 1}, nil
}
