package countries

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a lookup code is absent from a catalog.
var ErrNotFound = errors.New("countries: not found")

// NotFoundError carries the original, un-normalized code that missed.
type NotFoundError struct {
	Kind string
	Code string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("countries: %s %q not found", e.Kind, e.Code)
}

// Is lets errors.Is match a NotFoundError against ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func notFound(kind, code string) error {
	return &NotFoundError{Kind: kind, Code: code}
}

func duplicateCode(kind, code string) error {
	return fmt.Errorf("countries: duplicate %s code %q", kind, code)
}
