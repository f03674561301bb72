package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Jaymieblaze/my-todo-app/internal/server/storage"
	"github.com/Jaymieblaze/my-todo-app/internal/validation"
	"github.com/Jaymieblaze/my-todo-app/pkg/api"
)

// TodoStorage определяет интерфейс хранилища для CRUD операций над todos
type TodoStorage interface {
	CreateTodo(ctx context.Context, payload api.TodoPayload) (*api.Todo, error)
	GetTodo(ctx context.Context, id int) (*api.Todo, error)
	ListTodos(ctx context.Context) ([]api.Todo, error)
	UpdateTodo(ctx context.Context, id int, payload api.TodoPayload) (*api.Todo, error)
	DeleteTodo(ctx context.Context, id int) error
}

type TodoHandler struct {
	logger  *slog.Logger
	storage TodoStorage
}

func NewTodoHandler(logger *slog.Logger, storage TodoStorage) *TodoHandler {
	return &TodoHandler{
		logger:  logger,
		storage: storage,
	}
}

// List обрабатывает GET /todos
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	todos, err := h.storage.ListTodos(r.Context())
	if err != nil {
		h.logger.Error("failed to list todos", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to list todos")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, todos)
}

// Get обрабатывает GET /todos/{id}
func (h *TodoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.todoID(w, r)
	if !ok {
		return
	}

	todo, err := h.storage.GetTodo(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrTodoNotFound) {
			writeError(w, h.logger, http.StatusNotFound, "Todo not found")
			return
		}
		h.logger.Error("failed to get todo", "id", id, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to get todo")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, todo)
}

// Create обрабатывает POST /todos
func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.decodePayload(w, r)
	if !ok {
		return
	}

	todo, err := h.storage.CreateTodo(r.Context(), *payload)
	if err != nil {
		h.logger.Error("failed to create todo", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to create todo")
		return
	}

	h.logger.Info("todo created", "id", todo.ID, "client_id", r.Header.Get("X-Client-ID"))
	writeJSON(w, h.logger, http.StatusCreated, todo)
}

// Update обрабатывает PUT /todos/{id}
func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.todoID(w, r)
	if !ok {
		return
	}

	payload, ok := h.decodePayload(w, r)
	if !ok {
		return
	}

	todo, err := h.storage.UpdateTodo(r.Context(), id, *payload)
	if err != nil {
		if errors.Is(err, storage.ErrTodoNotFound) {
			writeError(w, h.logger, http.StatusNotFound, "Todo not found")
			return
		}
		h.logger.Error("failed to update todo", "id", id, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to update todo")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, todo)
}

// Delete обрабатывает DELETE /todos/{id}
func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.todoID(w, r)
	if !ok {
		return
	}

	if err := h.storage.DeleteTodo(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrTodoNotFound) {
			writeError(w, h.logger, http.StatusNotFound, "Todo not found")
			return
		}
		h.logger.Error("failed to delete todo", "id", id, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to delete todo")
		return
	}

	h.logger.Info("todo deleted", "id", id, "client_id", r.Header.Get("X-Client-ID"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *TodoHandler) todoID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		writeError(w, h.logger, http.StatusBadRequest, "Invalid todo id")
		return 0, false
	}
	return id, true
}

func (h *TodoHandler) decodePayload(w http.ResponseWriter, r *http.Request) (*api.TodoPayload, bool) {
	var payload api.TodoPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}

	if err := validation.ValidateTitle(payload.Title); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, err.Error())
		return nil, false
	}

	return &payload, true
}
