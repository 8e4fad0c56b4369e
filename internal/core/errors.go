package core

import (
	"fmt"

	"github.com/pkg/errors"
)

const MsgContentRequired = "Content is required"

// ValidationError marks a request that is well formed but misses a required
// field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// AsValidation unwraps err and returns the underlying *ValidationError, if any.
func AsValidation(err error) (*ValidationError, bool) {
	ve, ok := errors.Cause(err).(*ValidationError)
	return ve, ok
}
