package constant

import "errors"

// Structured error codes for shutdown registry failures
var (
	ErrInvalidCallback     = errors.New("SHD-0001")
	ErrMissingAppName      = errors.New("SHD-0002")
	ErrUnknownSignalName   = errors.New("SHD-0003")
	ErrInvalidExitCode     = errors.New("SHD-0004")
	ErrInvalidDrainTimeout = errors.New("SHD-0005")
	ErrServerDraining      = errors.New("SHD-0006")
	ErrInternalServer      = errors.New("SHD-0500")
)
