package service

import (
	"errors"
	"fmt"
)

// ErrAuthRequired is returned when a mutation is attempted with no
// authenticated identity.
var ErrAuthRequired = errors.New("not authenticated")

// FetchError wraps a failed store or auth call. The underlying message
// is passed through from the backend's own error payload so it can be
// shown to the user verbatim.
type FetchError struct {
	Op  string // "list", "create", "update", "delete"
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// IsAuthRequired reports whether err is (or wraps) ErrAuthRequired.
func IsAuthRequired(err error) bool {
	return errors.Is(err, ErrAuthRequired)
}
