package contract

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes term errors.
type ErrorCode string

const (
	// ErrCodeUnrecognizedVariant indicates a dispatcher received a term whose
	// type is outside the closed variant set. This is a construction-time bug
	// upstream: term construction is restricted to the primitives and
	// combinators in this package, so dispatch should never see anything else.
	ErrCodeUnrecognizedVariant ErrorCode = "UNRECOGNIZED_VARIANT"

	// ErrCodeNotImplemented indicates an interpretation declares a variant
	// method it has not yet filled in (the valuation engine scaffold).
	ErrCodeNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// ErrCodeInvalidTerm indicates a constructor rejected its inputs
	// (empty currency, non-finite constant, unparseable horizon).
	ErrCodeInvalidTerm ErrorCode = "INVALID_TERM"
)

// TermError represents an error raised while constructing or dispatching a
// term. Errors are never recovered inside a traversal: any TermError aborts
// the current render/evaluate call and propagates to the caller.
type TermError struct {
	// Code identifies the error category.
	Code ErrorCode

	// Algebra names the term algebra involved ("contract" or "observable").
	Algebra string

	// Variant names the variant involved, when known.
	Variant string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *TermError) Error() string {
	if e.Variant != "" {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Variant, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewUnrecognizedVariantError creates a TermError for a term outside the
// closed variant set of the named algebra.
func NewUnrecognizedVariantError(algebra string, term any) *TermError {
	return &TermError{
		Code:    ErrCodeUnrecognizedVariant,
		Algebra: algebra,
		Message: fmt.Sprintf("term type %T is outside the %s algebra", term, algebra),
	}
}

// NewNotImplementedError creates a TermError for an interpretation method
// that has been declared but not implemented. The variant name is attached
// so the failure identifies exactly which method is missing.
func NewNotImplementedError(variant string) *TermError {
	return &TermError{
		Code:    ErrCodeNotImplemented,
		Variant: variant,
		Message: "interpretation does not implement this variant",
	}
}

// NewInvalidTermError creates a TermError for a construction-time validation
// failure on the named variant.
func NewInvalidTermError(variant, format string, args ...any) *TermError {
	return &TermError{
		Code:    ErrCodeInvalidTerm,
		Variant: variant,
		Message: fmt.Sprintf(format, args...),
	}
}

// IsUnrecognizedVariant returns true if the error is an unrecognized-variant
// error. Uses errors.As to handle wrapped errors.
func IsUnrecognizedVariant(err error) bool {
	var te *TermError
	if errors.As(err, &te) {
		return te.Code == ErrCodeUnrecognizedVariant
	}
	return false
}

// IsNotImplemented returns true if the error is a not-implemented error.
// Uses errors.As to handle wrapped errors.
func IsNotImplemented(err error) bool {
	var te *TermError
	if errors.As(err, &te) {
		return te.Code == ErrCodeNotImplemented
	}
	return false
}

// IsInvalidTerm returns true if the error is a construction-time validation
// error. Uses errors.As to handle wrapped errors.
func IsInvalidTerm(err error) bool {
	var te *TermError
	if errors.As(err, &te) {
		return te.Code == ErrCodeInvalidTerm
	}
	return false
}
