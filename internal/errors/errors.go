package errors

import (
	"errors"
	"fmt"
)

// Common error types for the assistant front-end
var (
	// Authentication errors
	ErrExchangeFailed   = errors.New("authorization code exchange failed")
	ErrStateMismatch    = errors.New("oauth2 state mismatch")
	ErrInvalidIDToken   = errors.New("invalid id token")
	ErrNotAuthenticated = errors.New("not authenticated")

	// Query errors
	ErrEmptyQuestion  = errors.New("question is empty")
	ErrBackendFailure = errors.New("backend request failed")
	ErrNetworkFailure = errors.New("network failure")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidSession  = errors.New("invalid session")

	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
