// Package contract defines the two term algebras at the heart of covenant:
// observables (scalar processes) and contracts (payoff structures), plus the
// generic dispatch mechanism that routes terms to interpretations.
//
// ALGEBRAS:
//
// Observable is a sealed interface with two variants:
//   - Const: a fixed decimal scalar
//   - Quantity: a reference to a named market quantity
//
// Contract is a sealed interface with ten variants:
//   - Zero, One: terminal obligations
//   - Give, And, Or, Then: composition and choice
//   - Truncate, Get, Anytime: timing and acquisition
//   - Scale: payoff scaling by an Observable
//
// Terms are immutable value trees. Once constructed they are never mutated,
// so structural sharing is safe and concurrent readers need no coordination.
//
// SEALED INTERFACES:
//
// Observable and Contract use the marker method pattern. Only types in this
// package implement them, which keeps the variant sets closed and makes the
// dispatch type switches exhaustive.
//
// INTERPRETATIONS:
//
// Processing a term is expressed as an implementation of a capability
// interface: ObservableVisitor[T] (one method per observable variant) or
// Visitor[T] (one method per contract variant). The Dispatch and
// DispatchObservable entry points inspect a term's variant and invoke the
// matching method with the variant's fields. New interpretations (the text
// printer in internal/render, the valuation engine in internal/valuate) are
// added as new implementations of these interfaces - the variant types never
// change.
//
// An interpretation that has not implemented a variant must return a
// NOT_IMPLEMENTED TermError naming the variant; the dispatcher never
// substitutes a default.
//
// CONSTRUCTION:
//
// Constructors (NewOne, NewQuantity, ConstFromFloat, the combinators in
// combinators.go) validate their inputs at construction time, so a malformed
// term never enters a tree and interpretations never re-validate. Validate
// re-checks a whole tree for terms assembled from struct literals or
// deserialized definitions.
package contract
