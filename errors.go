package mapgen

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for common operations.
var (
	// ErrNotFound is returned by a select-by-key implementation when no row
	// matches the key.
	ErrNotFound = errors.New("mapgen: record not found")

	// ErrEmptyCondition is returned for a criterion without condition.
	ErrEmptyCondition = errors.New("mapgen: empty criterion condition")

	// ErrEmptyList is returned for a list criterion without values.
	ErrEmptyList = errors.New("mapgen: empty criterion value list")
)

// IsNotFound returns true if the error is or wraps ErrNotFound.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrNotFound)
}

// CriterionError reports a malformed criterion of a Params.
type CriterionError struct {
	Group int   // Index of the criteria group
	Index int   // Index of the criterion in its group
	Err   error // Underlying error
}

// Error returns the error string.
func (e *CriterionError) Error() string {
	return fmt.Sprintf("mapgen: criterion %d of group %d: %v", e.Index, e.Group, e.Err)
}

// Unwrap returns the underlying error.
func (e *CriterionError) Unwrap() error {
	return e.Err
}

// IsCriterionError returns true if the error is a CriterionError.
func IsCriterionError(err error) bool {
	if err == nil {
		return false
	}
	var e *CriterionError
	return errors.As(err, &e)
}
