package model

import (
	"errors"
	"fmt"
)

// LoadError reports a dataset that could not be loaded. It is fatal at startup.
type LoadError struct {
	Path   string
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("load %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("load %s: %s", e.Path, e.Reason)
}

func (e *LoadError) Unwrap() error { return e.Err }

// LookupError reports a country code missing from the directory
type LookupError struct {
	Code string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("country code %q not found in directory", e.Code)
}

// IsLoadError reports whether err wraps a *LoadError
func IsLoadError(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}

// IsLookupError reports whether err wraps a *LookupError
func IsLookupError(err error) bool {
	var le *LookupError
	return errors.As(err, &le)
}
