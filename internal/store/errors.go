package store

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is wrapped by IndexError when Delete gets a bad index.
var ErrIndexOutOfRange = errors.New("index out of range")

// ReadError reports why Load fell back to an empty ledger.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading ledger %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// ValidationError rejects a transaction before it reaches the ledger.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid transaction: %v", e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// IndexError rejects a delete outside [0, Len).
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	if e.Len == 0 {
		return fmt.Sprintf("index %d out of range: ledger is empty", e.Index)
	}
	return fmt.Sprintf("index %d out of range [0, %d]", e.Index, e.Len-1)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// WriteError reports a failed persist. The in-memory ledger keeps the
// change that triggered it; it is durable only after a later successful persist.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing ledger %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
