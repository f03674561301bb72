package api

import (
	"context"

	"github.com/Jaymieblaze/my-todo-app/pkg/api"
)

//go:generate moq -out clientapi_mock.go . ClientAPI

// ClientAPI defines the interface for the remote todos gateway.
// Implementations translate CRUD intents into single HTTP requests and do
// not retry; failures are reported so the synchronizer can keep the
// operation queued.
type ClientAPI interface {
	// FetchTodos retrieves the full remote todo collection
	FetchTodos(ctx context.Context) ([]api.Todo, error)

	// FetchTodo retrieves a single remote todo by id
	FetchTodo(ctx context.Context, id int) (*api.Todo, error)

	// CreateTodo creates a todo on the remote resource
	CreateTodo(ctx context.Context, payload api.TodoPayload) (*api.Todo, error)

	// UpdateTodo replaces a remote todo
	UpdateTodo(ctx context.Context, id int, payload api.TodoPayload) (*api.Todo, error)

	// DeleteTodo deletes a remote todo
	DeleteTodo(ctx context.Context, id int) error
}

// Compile-time check that Client satisfies ClientAPI
var _ ClientAPI = (*Client)(nil)
