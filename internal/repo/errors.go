package repo

import "errors"

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrStore               = errors.New("transaction store failure")
)

// storeError keeps the caller-facing "Failed to ..." message while matching
// both ErrStore and the underlying cause with errors.Is.
type storeError struct {
	op  string
	err error
}

func (e *storeError) Error() string { return "Failed to " + e.op + ": " + e.err.Error() }

func (e *storeError) Unwrap() []error { return []error{ErrStore, e.err} }

type notFoundError struct {
	key   string
	value string
}

func (e *notFoundError) Error() string {
	return "Transaction not found with " + e.key + ": " + e.value
}

func (e *notFoundError) Unwrap() error { return ErrTransactionNotFound }
