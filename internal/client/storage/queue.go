package storage

import (
	"context"

	"github.com/Jaymieblaze/my-todo-app/internal/models"
)

//go:generate moq -out queuestorage_mock.go . QueueStorage

// QueueStorage defines the interface for the durable pending-operation queue.
// The queue survives process restarts; an operation is removed only after
// the remote gateway confirms it.
type QueueStorage interface {
	// EnqueueOperation appends an operation to the queue and returns the
	// assigned opId (auto-incrementing, insertion-ordered)
	EnqueueOperation(ctx context.Context, op *models.PendingOperation) (uint64, error)

	// ListOperations returns all queued operations ordered by timestamp
	// ascending, with opId as the tie-break
	ListOperations(ctx context.Context) ([]*models.PendingOperation, error)

	// DequeueOperation removes a confirmed operation
	// Returns ErrOperationNotFound if the opId doesn't exist
	DequeueOperation(ctx context.Context, opID uint64) error

	// CountOperations returns the number of queued operations
	CountOperations(ctx context.Context) (int, error)
}
