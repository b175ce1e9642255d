package manifest

import (
	"errors"
	"fmt"
)

var (
	ErrNilRegistry         = errors.New("handler registry is nil")
	ErrMissingPath         = errors.New("route path is required")
	ErrMissingHandler      = errors.New("route handler is required")
	ErrUnknownHandler      = errors.New("unknown handler")
	ErrUnknownDataHandler  = errors.New("unknown data handler")
	ErrDuplicateName       = errors.New("name already registered")
	ErrInvalidManifest     = errors.New("invalid route manifest")
	ErrManifestUnreachable = errors.New("route manifest could not be read")
)

// RecordError reports a problem with one entry of the routes list.
type RecordError struct {
	Index int    // position in the routes list, starting at 0
	Path  string // route path as written, after substitution
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("manifest: route #%d (%q): %v", e.Index, e.Path, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
