package index

import (
	"errors"
	"fmt"
)

// Sentinel errors for the calculator contract. Calculators raise; the engine
// and callers decide whether to catch-and-continue (partial aggregation) or
// catch-and-abort (total failure). Nothing in this package logs-and-swallows.
var (
	// ErrMissingData - a required field or sub-structure is absent from the
	// snapshot, or arrived as NaN.
	ErrMissingData = errors.New("required market data missing")

	// ErrUndefinedComputation - a denominator is zero or near-zero, a
	// historical window is too short, or a percentile cannot be computed.
	ErrUndefinedComputation = errors.New("computation undefined")

	// ErrNoIndicators - zero indicator scores were supplied or produced for a
	// region. A final index must never silently default to neutral.
	ErrNoIndicators = errors.New("no indicator scores available")
)

// missingf wraps ErrMissingData with field and indicator context.
func missingf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMissingData, fmt.Sprintf(format, args...))
}

// undefinedf wraps ErrUndefinedComputation with computation context.
func undefinedf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUndefinedComputation, fmt.Sprintf(format, args...))
}

// fieldValue extracts an optional instrument field. A nil pointer or a NaN
// value both mean the provider did not deliver usable data.
func fieldValue(p *float64, field, context string) (float64, error) {
	if p == nil {
		return 0, missingf("field %q for %s", field, context)
	}
	if *p != *p {
		return 0, missingf("field %q for %s is NaN", field, context)
	}
	return *p, nil
}
