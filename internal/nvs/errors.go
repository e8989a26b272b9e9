package nvs

import (
	"errors"
	"fmt"
)

// Error kinds reported by a partition. The first two are recoverable by
// erasing the partition.
var (
	ErrNoFreePages     = errors.New("no free pages")
	ErrNewVersionFound = errors.New("partition written by newer format version")
	ErrCorrupt         = errors.New("partition image corrupt")
)

// StoreError wraps a failure of one partition operation.
type StoreError struct {
	Op   string // "init", "erase", "reinit"
	Path string // partition location, if any
	Err  error
}

// Error implements the error interface
func (e *StoreError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("nvs %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("nvs %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NeedsErase reports whether err is one of the kinds repaired by erasing
// the partition.
func NeedsErase(err error) bool {
	return errors.Is(err, ErrNoFreePages) || errors.Is(err, ErrNewVersionFound)
}
