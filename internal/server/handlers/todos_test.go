package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jaymieblaze/my-todo-app/internal/server/storage/sqlite"
	"github.com/Jaymieblaze/my-todo-app/pkg/api"
)

// setupTestLogger creates a logger for testing
func setupTestLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelError, // Only show errors in tests
	}
	handler := slog.NewTextHandler(os.Stdout, opts)
	return slog.New(handler)
}

func setupTestHandler(t *testing.T) *TodoHandler {
	t.Helper()

	store, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})

	return NewTodoHandler(setupTestLogger(), store)
}

func createTodoReq(t *testing.T, h *TodoHandler, title string) api.Todo {
	t.Helper()

	body, err := json.Marshal(api.TodoPayload{Title: title, UserID: 1})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/todos", bytes.NewReader(body))
	w := httptest.NewRecorder()
	h.Create(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var todo api.Todo
	require.NoError(t, json.NewDecoder(w.Body).Decode(&todo))
	return todo
}

func itemRequest(method string, id string) *http.Request {
	req := httptest.NewRequest(method, "/todos/"+id, nil)
	req.SetPathValue("id", id)
	return req
}

func TestTodoHandler_Create(t *testing.T) {
	h := setupTestHandler(t)

	todo := createTodoReq(t, h, "Buy milk")

	assert.Equal(t, 1, todo.ID)
	assert.Equal(t, "Buy milk", todo.Title)
	assert.False(t, todo.Completed)
	assert.False(t, todo.CreatedAt.IsZero())
}

func TestTodoHandler_Create_EmptyTitle(t *testing.T) {
	h := setupTestHandler(t)

	body, err := json.Marshal(api.TodoPayload{Title: "   ", UserID: 1})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/todos", bytes.NewReader(body))
	w := httptest.NewRecorder()
	h.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp api.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.NotEmpty(t, resp.Error)
}

func TestTodoHandler_Create_InvalidBody(t *testing.T) {
	h := setupTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/todos", bytes.NewReader([]byte("not json")))
	w := httptest.NewRecorder()
	h.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTodoHandler_List(t *testing.T) {
	h := setupTestHandler(t)

	createTodoReq(t, h, "first")
	createTodoReq(t, h, "second")

	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	w := httptest.NewRecorder()
	h.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var todos []api.Todo
	require.NoError(t, json.NewDecoder(w.Body).Decode(&todos))
	require.Len(t, todos, 2)
	assert.Equal(t, "first", todos[0].Title)
	assert.Equal(t, "second", todos[1].Title)
}

func TestTodoHandler_List_Empty(t *testing.T) {
	h := setupTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	w := httptest.NewRecorder()
	h.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestTodoHandler_Get(t *testing.T) {
	h := setupTestHandler(t)

	created := createTodoReq(t, h, "find me")

	w := httptest.NewRecorder()
	h.Get(w, itemRequest(http.MethodGet, strconv.Itoa(created.ID)))

	assert.Equal(t, http.StatusOK, w.Code)

	var todo api.Todo
	require.NoError(t, json.NewDecoder(w.Body).Decode(&todo))
	assert.Equal(t, created.ID, todo.ID)
	assert.Equal(t, "find me", todo.Title)
}

func TestTodoHandler_Get_NotFound(t *testing.T) {
	h := setupTestHandler(t)

	w := httptest.NewRecorder()
	h.Get(w, itemRequest(http.MethodGet, "42"))

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp api.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Todo not found", resp.Error)
}

func TestTodoHandler_Get_InvalidID(t *testing.T) {
	h := setupTestHandler(t)

	w := httptest.NewRecorder()
	h.Get(w, itemRequest(http.MethodGet, "abc"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTodoHandler_Update(t *testing.T) {
	h := setupTestHandler(t)

	created := createTodoReq(t, h, "old title")

	body, err := json.Marshal(api.TodoPayload{Title: "new title", Completed: true, UserID: 1})
	require.NoError(t, err)

	id := strconv.Itoa(created.ID)
	req := httptest.NewRequest(http.MethodPut, "/todos/"+id, bytes.NewReader(body))
	req.SetPathValue("id", id)

	w := httptest.NewRecorder()
	h.Update(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var todo api.Todo
	require.NoError(t, json.NewDecoder(w.Body).Decode(&todo))
	assert.Equal(t, created.ID, todo.ID)
	assert.Equal(t, "new title", todo.Title)
	assert.True(t, todo.Completed)
}

func TestTodoHandler_Update_NotFound(t *testing.T) {
	h := setupTestHandler(t)

	body, err := json.Marshal(api.TodoPayload{Title: "whatever", UserID: 1})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/todos/99", bytes.NewReader(body))
	req.SetPathValue("id", "99")

	w := httptest.NewRecorder()
	h.Update(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTodoHandler_Delete(t *testing.T) {
	h := setupTestHandler(t)

	created := createTodoReq(t, h, "doomed")
	id := strconv.Itoa(created.ID)

	w := httptest.NewRecorder()
	h.Delete(w, itemRequest(http.MethodDelete, id))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	h.Get(w, itemRequest(http.MethodGet, id))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTodoHandler_Delete_NotFound(t *testing.T) {
	h := setupTestHandler(t)

	w := httptest.NewRecorder()
	h.Delete(w, itemRequest(http.MethodDelete, "7"))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
