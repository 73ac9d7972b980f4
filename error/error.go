package error

import (
	"errors"
	"fmt"
	"strings"

	"github.com/LerianStudio/lib-shutdown-go/constant"
)

// InvalidCallbackError is raised when a callback cannot be validated as
// invocable at registration time. Validation is forced eagerly so the failure
// surfaces in the caller's normal control flow instead of during process
// teardown, where error reporting is unreliable.
type InvalidCallbackError struct {
	Target string
	Reason string
	Err    error
}

func (e *InvalidCallbackError) Error() string {
	target := e.Target
	if strings.TrimSpace(target) == "" {
		target = "<unknown>"
	}

	if strings.TrimSpace(e.Reason) == "" {
		return fmt.Sprintf("%s - invalid callback %s", constant.ErrInvalidCallback.Error(), target)
	}

	return fmt.Sprintf("%s - invalid callback %s: %s", constant.ErrInvalidCallback.Error(), target, e.Reason)
}

// Unwrap implements the error interface introduced in Go 1.13 to unwrap the internal error.
func (e *InvalidCallbackError) Unwrap() error {
	return e.Err
}

// IsInvalidCallback checks if an error originated from callback validation
func IsInvalidCallback(err error) bool {
	if err == nil {
		return false
	}

	var cbErr *InvalidCallbackError
	if errors.As(err, &cbErr) {
		return true
	}

	// Try to unwrap and check nested error
	unwrapped := errors.Unwrap(err)
	if unwrapped != nil && unwrapped != err {
		return IsInvalidCallback(unwrapped)
	}

	return false
}
