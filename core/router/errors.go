package router

import (
	"errors"
	"fmt"
)

var (
	// Route definition errors
	ErrNoMethods      = errors.New("route has no http methods")
	ErrInvalidMethod  = errors.New("unsupported http method")
	ErrDuplicateVar   = errors.New("route path contains duplicate variable name")
	ErrInvalidVarName = errors.New("route path variable name is empty")

	// Segment errors
	ErrUnknownVarType = errors.New("unknown route path variable type")
	ErrInvalidRegexp  = errors.New("invalid regex pattern in route path")
)

// ConfigError describes a route that cannot be registered.
// It is returned synchronously by Register and is meant to abort application startup.
type ConfigError struct {
	Path    string // route path as written
	Segment string // offending segment, empty when the error is not segment specific
	Err     error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Segment != "" {
		return fmt.Sprintf("router: %v in %q (segment %q)", e.Err, e.Path, e.Segment)
	}
	return fmt.Sprintf("router: %v in %q", e.Err, e.Path)
}

// Unwrap allows errors.Is/As against the sentinel errors above.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

func configError(path, segment string, err error) error {
	return &ConfigError{Path: path, Segment: segment, Err: err}
}
