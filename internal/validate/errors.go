package validate

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by dockr. Callers match them with errors.Is.
var (
	ErrInvalidArgumentType  = errors.New("invalid argument type")
	ErrPathNotFound         = errors.New("path not found")
	ErrPathIsDirectory      = errors.New("path is a directory")
	ErrInvalidVersionFormat = errors.New("invalid version format")
	ErrInvalidImageFamily   = errors.New("invalid image family")
	ErrRegistryUnavailable  = errors.New("registry unavailable")
	ErrUnsupportedVersion   = errors.New("unsupported version")
	ErrWriteFailed          = errors.New("write failed")
)

// RegistryError reports a non-success response from the tag registry.
type RegistryError struct {
	StatusCode int
	Endpoint   string
	Err        error
}

func (e *RegistryError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: %s: %v", ErrRegistryUnavailable, e.Endpoint, e.Err)
	}

	return fmt.Sprintf("%s: %s returned HTTP %d", ErrRegistryUnavailable, e.Endpoint, e.StatusCode)
}

// Is lets errors.Is(err, ErrRegistryUnavailable) match.
func (e *RegistryError) Is(target error) bool {
	return target == ErrRegistryUnavailable
}

func (e *RegistryError) Unwrap() error {
	return e.Err
}
