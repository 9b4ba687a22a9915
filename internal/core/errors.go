package core

import (
	"errors"
	"fmt"
)

// Sentinel errors identifying the library's typed error taxonomy.
// Callers should match on these with errors.Is, not on the wrapped
// message.
var (
	// ErrInvalidParameter is raised at construction time when a cooling
	// schedule, neighborhood or other component is given a parameter
	// outside its valid domain.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrTypeMismatch is raised when CopyFrom receives an incompatible
	// solution, or a Move's Evaluate/Apply is invoked against a solution
	// whose concrete type it does not support.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrNoMovesAvailable is raised by algorithms that require a
	// non-empty neighborhood and find it empty. Simulated annealing
	// itself tolerates an empty neighborhood (it behaves as "reject
	// all"); more aggressive strategies must raise this.
	ErrNoMovesAvailable = errors.New("no moves available")
)

// InvalidParameterf wraps ErrInvalidParameter with a formatted detail,
// using the fmt.Errorf("...: %w", ...) style used throughout this
// library's Config.Validate methods.
func InvalidParameterf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidParameter}, args...)...)
}

// TypeMismatchf wraps ErrTypeMismatch with a formatted detail.
func TypeMismatchf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrTypeMismatch}, args...)...)
}

// NoMovesAvailablef wraps ErrNoMovesAvailable with a formatted detail.
func NoMovesAvailablef(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrNoMovesAvailable}, args...)...)
}
