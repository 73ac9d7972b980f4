package pkg

import (
	"fmt"
	"strings"

	"github.com/LerianStudio/lib-shutdown-go/constant"
)

// ValidationError records an error raised while validating the shutdown
// configuration or a request rejected during the drain window.
type ValidationError struct {
	EntityType string `json:"entityType,omitempty"`
	Title      string
	Message    string
	Code       string
	Err        error `json:"err,omitempty"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if strings.TrimSpace(e.Code) != "" {
		return fmt.Sprintf("%s - %s", e.Code, e.Message)
	}

	return e.Message
}

// Unwrap implements the error interface introduced in Go 1.13 to unwrap the internal error.
func (e ValidationError) Unwrap() error {
	return e.Err
}

// FailedPreconditionError indicates an operation rejected because the process
// is already draining.
type FailedPreconditionError struct {
	EntityType string `json:"entityType,omitempty"`
	Title      string `json:"title,omitempty"`
	Message    string `json:"message,omitempty"`
	Code       string `json:"code,omitempty"`
	Err        error  `json:"err,omitempty"`
}

func (e FailedPreconditionError) Error() string {
	return e.Message
}

// InternalServerError indicates an unexpected failure during an operation.
type InternalServerError struct {
	EntityType string `json:"entityType,omitempty"`
	Title      string `json:"title,omitempty"`
	Message    string `json:"message,omitempty"`
	Code       string `json:"code,omitempty"`
	Err        error  `json:"err,omitempty"`
}

func (e InternalServerError) Error() string {
	return e.Message
}

// ValidateInternalError validates the error and returns an appropriate InternalServerError.
func ValidateInternalError(err error, entityType string) error {
	return InternalServerError{
		EntityType: entityType,
		Code:       constant.ErrInternalServer.Error(),
		Title:      "Internal Server Error",
		Message:    "The server encountered an unexpected error. Please try again later or contact support.",
		Err:        err,
	}
}

// ValidateBusinessError validates the error and returns the appropriate business error code, title, and message.
func ValidateBusinessError(err error, entityType string, args ...any) error {
	errorMap := map[error]error{
		constant.ErrMissingAppName: ValidationError{
			EntityType: entityType,
			Code:       constant.ErrMissingAppName.Error(),
			Title:      "Application name is missing",
			Message:    "The shutdown client is not configured with an application name. Please set the APPLICATION_NAME environment variable or pass it explicitly.",
		},
		constant.ErrUnknownSignalName: ValidationError{
			EntityType: entityType,
			Code:       constant.ErrUnknownSignalName.Error(),
			Title:      "Unknown termination signal",
			Message:    fmt.Sprintf("The signal name '%s' is not recognized or cannot be trapped. Please use names such as SIGINT or SIGTERM.", args...),
		},
		constant.ErrInvalidExitCode: ValidationError{
			EntityType: entityType,
			Code:       constant.ErrInvalidExitCode.Error(),
			Title:      "Invalid exit code",
			Message:    "The configured exit code must be between 0 and 255.",
		},
		constant.ErrInvalidDrainTimeout: ValidationError{
			EntityType: entityType,
			Code:       constant.ErrInvalidDrainTimeout.Error(),
			Title:      "Invalid drain timeout",
			Message:    "The configured drain timeout must be a positive number of seconds.",
		},
		constant.ErrServerDraining: FailedPreconditionError{
			EntityType: entityType,
			Code:       constant.ErrServerDraining.Error(),
			Title:      "Server is shutting down",
			Message:    "The server is draining and no longer accepts new requests. Please retry against another instance.",
		},
	}

	if mappedError, found := errorMap[err]; found {
		return mappedError
	}

	return err
}
