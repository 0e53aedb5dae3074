// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-buf library.

package api

import "fmt"

// Common errors used across the library.
var (
	// ErrWouldBlock reports that a non-blocking I/O handle had no bytes to
	// move right now. It is an expected operational outcome, not a failure;
	// retry scheduling belongs to the caller.
	ErrWouldBlock = fmt.Errorf("operation would block")

	ErrHandleClosed    = fmt.Errorf("io handle is closed")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrNotSupported    = fmt.Errorf("operation not supported")
)

// ContractError is the payload carried by the panic raised on a buffer
// contract violation: draining more than Len(), self-move, over-committing a
// reservation, linearizing beyond Len(), or allocation failure for required
// growth. These indicate a caller bug or unrecoverable exhaustion; the engine
// never degrades a corrupted buffer into best-effort behavior.
type ContractError struct {
	Op      string
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *ContractError) Error() string {
	if len(e.Context) == 0 {
		return fmt.Sprintf("buffer contract violation in %s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("buffer contract violation in %s: %s (context: %+v)", e.Op, e.Message, e.Context)
}

// NewContractError creates a new contract violation error for operation op.
func NewContractError(op, message string) *ContractError {
	return &ContractError{
		Op:      op,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *ContractError) WithContext(key string, value any) *ContractError {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
