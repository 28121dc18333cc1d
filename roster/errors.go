/*
errors.go - Centralized error types for the roster engine

PURPOSE:
  All engine error types in one place. The engine favors graceful
  degradation for user-edited content (unknown codes, odd labels), so the
  errors here cover only structural invariant violations detected at
  construction time.

USAGE:
  Callers match with errors.Is / errors.As:

    if errors.Is(err, roster.ErrInvalidShift) { ... }

SEE ALSO:
  - coverage.go: NewCoverageMapper rejects invalid catalogues
  - types.go: Validate methods producing these errors
*/
package roster

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidShift is returned when a shift violates End > Start.
	ErrInvalidShift = errors.New("invalid shift: end must be greater than start")

	// ErrDuplicateShiftCode is returned when a catalogue defines the same
	// code twice.
	ErrDuplicateShiftCode = errors.New("duplicate shift code")

	// ErrInvalidPerson is returned when a person's hour bounds are
	// inconsistent (min above max) or consecMax is not positive.
	ErrInvalidPerson = errors.New("invalid person record")

	// ErrNoDays is returned when an operation is asked to cover a period
	// of zero or negative length.
	ErrNoDays = errors.New("period must contain at least one day")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidShiftError reports which catalogue entry broke the End > Start
// invariant.
type InvalidShiftError struct {
	Code  string
	Start float64
	End   float64
}

func (e *InvalidShiftError) Error() string {
	return fmt.Sprintf("shift %q: end %v must be greater than start %v", e.Code, e.End, e.Start)
}

func (e *InvalidShiftError) Unwrap() error {
	return ErrInvalidShift
}

// InvalidPersonError reports which person record failed validation.
type InvalidPersonError struct {
	ID string
}

func (e *InvalidPersonError) Error() string {
	return fmt.Sprintf("person %q: hour bounds must satisfy min <= max and consecMax > 0", e.ID)
}

func (e *InvalidPersonError) Unwrap() error {
	return ErrInvalidPerson
}
