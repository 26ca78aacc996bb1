package query

import (
	"fmt"

	apperrors "github.com/jrsteele09/go-owasp-assistant/internal/errors"
)

// BackendError is a reply from the backend that could not be used as an answer.
// Body is kept verbatim so it can be shown for diagnostics.
type BackendError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *BackendError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: status %d: %s", apperrors.ErrBackendFailure, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: status %d", apperrors.ErrBackendFailure, e.StatusCode)
}

func (e *BackendError) Unwrap() []error {
	if e.Err == nil {
		return []error{apperrors.ErrBackendFailure}
	}
	return []error{apperrors.ErrBackendFailure, e.Err}
}
