package storage

import "errors"

// Common client storage errors
var (
	// ErrTodoNotFound indicates that no todo exists for the given id
	ErrTodoNotFound = errors.New("todo not found")

	// ErrOperationNotFound indicates that no pending operation exists for the given opId
	ErrOperationNotFound = errors.New("pending operation not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
