package auth

import (
	"fmt"

	apperrors "github.com/jrsteele09/go-owasp-assistant/internal/errors"
)

// ExchangeError reports a failed code-for-token exchange. It always matches
// apperrors.ErrExchangeFailed with errors.Is.
type ExchangeError struct {
	StatusCode int    // Token endpoint status, zero when no response was received
	Body       string // Raw token endpoint response body, for diagnostics
	Reason     string
	Err        error
}

func (e *ExchangeError) Error() string {
	msg := apperrors.ErrExchangeFailed.Error()
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s: status %d", msg, e.StatusCode)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ExchangeError) Unwrap() []error {
	if e.Err == nil {
		return []error{apperrors.ErrExchangeFailed}
	}
	return []error{apperrors.ErrExchangeFailed, e.Err}
}
