package listing

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned for any section or row outside the bounds
// reported by SectionCount and RowCount.
var ErrOutOfRange = errors.New("index out of range")

// IndexError records which operation was handed a bad index path.
type IndexError struct {
	// Op is the adapter operation that failed (e.g. "Label", "Delete").
	Op   string
	Path IndexPath
	Err  error
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IndexError) Unwrap() error {
	return e.Err
}

func outOfRange(op string, p IndexPath) error {
	return &IndexError{Op: op, Path: p, Err: ErrOutOfRange}
}
