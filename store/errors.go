package store

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateID  = errors.New("student id already exists")
	ErrNotFound     = errors.New("not found")
	ErrEmptyQueue   = errors.New("queue is empty")
	ErrEmptyUndo    = errors.New("nothing to undo")
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotPersisted means the change was applied in memory but the
	// roster could not be written to storage.
	ErrNotPersisted = errors.New("change applied but not persisted")
)

// OpError ties a sentinel error to the operation and key that produced it.
type OpError struct {
	Op  string
	Key string
	Err error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.Key == "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err.Error())
	}
	return fmt.Sprintf("%s %q: %s", e.Op, e.Key, e.Err.Error())
}

func (e *OpError) Unwrap() error { return e.Err }

func opErr(op, key string, err error) error {
	return &OpError{Op: op, Key: key, Err: err}
}
