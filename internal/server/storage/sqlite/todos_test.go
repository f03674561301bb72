package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jaymieblaze/my-todo-app/internal/server/storage"
	"github.com/Jaymieblaze/my-todo-app/pkg/api"
)

func createTestStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})

	return s
}

func TestStorage_CreateTodo(t *testing.T) {
	ctx := context.Background()
	s := createTestStorage(t)

	todo, err := s.CreateTodo(ctx, api.TodoPayload{Title: "Buy milk", UserID: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, todo.ID)
	assert.Equal(t, "Buy milk", todo.Title)
	assert.False(t, todo.Completed)
	assert.False(t, todo.CreatedAt.IsZero())

	// ids are assigned sequentially
	second, err := s.CreateTodo(ctx, api.TodoPayload{Title: "Walk the dog", UserID: 1, Completed: true})
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)
	assert.True(t, second.Completed)
}

func TestStorage_GetTodo(t *testing.T) {
	ctx := context.Background()
	s := createTestStorage(t)

	created, err := s.CreateTodo(ctx, api.TodoPayload{Title: "Read a book", UserID: 2})
	require.NoError(t, err)

	got, err := s.GetTodo(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Read a book", got.Title)
	assert.Equal(t, 2, got.UserID)

	_, err = s.GetTodo(ctx, 999)
	assert.ErrorIs(t, err, storage.ErrTodoNotFound)
}

func TestStorage_ListTodos(t *testing.T) {
	ctx := context.Background()
	s := createTestStorage(t)

	todos, err := s.ListTodos(ctx)
	require.NoError(t, err)
	assert.Empty(t, todos)

	for _, title := range []string{"first", "second", "third"} {
		_, err := s.CreateTodo(ctx, api.TodoPayload{Title: title, UserID: 1})
		require.NoError(t, err)
	}

	todos, err = s.ListTodos(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 3)
	assert.Equal(t, "first", todos[0].Title)
	assert.Equal(t, "third", todos[2].Title)
}

func TestStorage_UpdateTodo(t *testing.T) {
	ctx := context.Background()
	s := createTestStorage(t)

	created, err := s.CreateTodo(ctx, api.TodoPayload{Title: "Draft", UserID: 1})
	require.NoError(t, err)

	updated, err := s.UpdateTodo(ctx, created.ID, api.TodoPayload{
		Title:     "Final",
		UserID:    1,
		Completed: true,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Final", updated.Title)
	assert.True(t, updated.Completed)

	_, err = s.UpdateTodo(ctx, 999, api.TodoPayload{Title: "nope", UserID: 1})
	assert.ErrorIs(t, err, storage.ErrTodoNotFound)
}

func TestStorage_DeleteTodo(t *testing.T) {
	ctx := context.Background()
	s := createTestStorage(t)

	created, err := s.CreateTodo(ctx, api.TodoPayload{Title: "Temporary", UserID: 1})
	require.NoError(t, err)

	require.NoError(t, s.DeleteTodo(ctx, created.ID))

	_, err = s.GetTodo(ctx, created.ID)
	assert.ErrorIs(t, err, storage.ErrTodoNotFound)

	assert.ErrorIs(t, s.DeleteTodo(ctx, created.ID), storage.ErrTodoNotFound)
}

func TestStorage_SeedTodos(t *testing.T) {
	ctx := context.Background()
	s := createTestStorage(t)

	seed := []api.TodoPayload{
		{Title: "Welcome to your new to-do list!", UserID: 1},
		{Title: "Click the checkbox to mark a task as complete", UserID: 1, Completed: true},
	}

	require.NoError(t, s.SeedTodos(ctx, seed))

	todos, err := s.ListTodos(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 2)

	// повторный seed не дублирует записи
	require.NoError(t, s.SeedTodos(ctx, seed))

	todos, err = s.ListTodos(ctx)
	require.NoError(t, err)
	assert.Len(t, todos, 2)
}
