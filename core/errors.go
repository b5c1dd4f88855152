package core

import "errors"

// ErrNotFound is a sentinel error for "not found" cases
var ErrNotFound = errors.New("not found")

// ErrForbidden is returned when the platform refuses an operation for lack of permission
var ErrForbidden = errors.New("forbidden")

// IsNotFoundError checks if an error is, or wraps, ErrNotFound
func IsNotFoundError(err error) bool {
	return err != nil && errors.Is(err, ErrNotFound)
}

// IsForbiddenError checks if an error is a permission error
func IsForbiddenError(err error) bool {
	return err != nil && errors.Is(err, ErrForbidden)
}
