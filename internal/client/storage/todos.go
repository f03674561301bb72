package storage

import (
	"context"

	"github.com/Jaymieblaze/my-todo-app/internal/models"
)

//go:generate moq -out todostorage_mock.go . TodoStorage

// TodoStorage defines the interface for the durable local todo store.
// Every write is committed before the call returns; each save or update is
// atomic per record.
type TodoStorage interface {
	// SaveTodo inserts or replaces a todo by id (upsert semantics)
	SaveTodo(ctx context.Context, todo *models.Todo) error

	// GetTodo retrieves a todo by id
	// Returns ErrTodoNotFound if the todo doesn't exist
	GetTodo(ctx context.Context, id int) (*models.Todo, error)

	// ListActiveTodos returns all todos that are not soft-deleted.
	// Order is unspecified; callers sort.
	ListActiveTodos(ctx context.Context) ([]*models.Todo, error)

	// BulkSaveTodos inserts or replaces todos by id in one transaction
	BulkSaveTodos(ctx context.Context, todos []*models.Todo) error

	// UpdateTodo merges the patch into an existing record and returns the result
	// Returns ErrTodoNotFound if the todo doesn't exist
	UpdateTodo(ctx context.Context, id int, patch models.TodoPatch) (*models.Todo, error)

	// MaxTodoID returns the maximum todo id in the store, including tombstones.
	// Used to seed the local id counter.
	MaxTodoID(ctx context.Context) (int, error)
}
