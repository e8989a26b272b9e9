package wifi

import (
	"errors"
	"fmt"
)

// Error codes reported by the stack.
var (
	ErrNotInit      = errors.New("not initialized")
	ErrInvalidState = errors.New("invalid state")
	ErrInvalidArg   = errors.New("invalid argument")
	ErrNoMem        = errors.New("out of memory")
)

// StackError is the error returned by a failed Stack operation.
type StackError struct {
	Op  string // operation name, e.g. "wifi_start"
	Err error  // one of the error codes above, or a driver-specific error
}

// Error implements the error interface
func (e *StackError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the error code
func (e *StackError) Unwrap() error {
	return e.Err
}
