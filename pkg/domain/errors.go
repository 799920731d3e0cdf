package domain

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrUnsupportedDetection is returned for a date-detection method the age
// resolver does not implement. It is fatal for the owning rule: without a
// usable ordering every path of the rule would misbehave the same way.
var ErrUnsupportedDetection = errors.New("unsupported date-detection method")

// PathUnavailableError marks a scan root that is missing or not a directory.
// It is path-local: sibling paths and other rules proceed.
type PathUnavailableError struct {
	Path string
	Err  error
}

func (e *PathUnavailableError) Error() string {
	return fmt.Sprintf("path unavailable: %s: %v", e.Path, e.Err)
}

func (e *PathUnavailableError) Unwrap() error { return e.Err }

func IsPathUnavailable(err error) bool {
	var pathErr *PathUnavailableError
	return errors.As(err, &pathErr)
}
