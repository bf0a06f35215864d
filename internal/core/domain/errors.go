package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownOrigin marks a message whose origin discriminator is missing
	// or not one of client/vendor. Such messages are never persisted.
	ErrUnknownOrigin = errors.New("unknown message origin")

	// ErrDuplicateMessage is returned by storage when an insert loses the
	// sparse-uniqueness race on messageId. Treated as benign by consumers.
	ErrDuplicateMessage = errors.New("duplicate messageId")
)

// ValidationError reports a field that failed identifier validation. The
// message names the field, its value and its length so the offending payload
// can be found in logs.
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %q (length %d), expected 24-character hex identifier", e.Field, e.Value, len(e.Value))
}
