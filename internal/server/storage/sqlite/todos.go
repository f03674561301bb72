package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Jaymieblaze/my-todo-app/internal/server/storage"
	"github.com/Jaymieblaze/my-todo-app/pkg/api"
)

// CreateTodo inserts a todo and returns the stored row with the
// server-assigned id
func (s *Storage) CreateTodo(ctx context.Context, payload api.TodoPayload) (*api.Todo, error) {
	now := time.Now().UTC()

	query := `
		INSERT INTO todos (user_id, title, completed, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		payload.UserID,
		payload.Title,
		boolToInt(payload.Completed),
		now.Unix(),
		now.Unix(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert todo: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get inserted id: %w", err)
	}

	return &api.Todo{
		ID:        int(id),
		UserID:    payload.UserID,
		Title:     payload.Title,
		Completed: payload.Completed,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// GetTodo retrieves a single todo by id
// Returns storage.ErrTodoNotFound if the todo doesn't exist
func (s *Storage) GetTodo(ctx context.Context, id int) (*api.Todo, error) {
	query := `
		SELECT id, user_id, title, completed, created_at, updated_at
		FROM todos
		WHERE id = ?
	`

	todo, err := scanTodo(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrTodoNotFound
		}
		return nil, fmt.Errorf("failed to get todo: %w", err)
	}

	return todo, nil
}

// ListTodos returns all todos ordered by id
func (s *Storage) ListTodos(ctx context.Context) ([]api.Todo, error) {
	query := `
		SELECT id, user_id, title, completed, created_at, updated_at
		FROM todos
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query todos: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	// non-nil, чтобы пустой список сериализовался как [] а не null
	todos := make([]api.Todo, 0)
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan todo: %w", err)
		}
		todos = append(todos, *todo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate todos: %w", err)
	}

	return todos, nil
}

// UpdateTodo replaces the mutable fields of a todo and returns the stored row
// Returns storage.ErrTodoNotFound if the todo doesn't exist
func (s *Storage) UpdateTodo(ctx context.Context, id int, payload api.TodoPayload) (*api.Todo, error) {
	now := time.Now().UTC()

	query := `
		UPDATE todos
		SET user_id = ?, title = ?, completed = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		payload.UserID,
		payload.Title,
		boolToInt(payload.Completed),
		now.Unix(),
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return nil, storage.ErrTodoNotFound
	}

	return s.GetTodo(ctx, id)
}

// DeleteTodo removes a todo
// Returns storage.ErrTodoNotFound if the todo doesn't exist
func (s *Storage) DeleteTodo(ctx context.Context, id int) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrTodoNotFound
	}

	return nil
}

// CountTodos returns the number of stored todos
func (s *Storage) CountTodos(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM todos`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count todos: %w", err)
	}
	return count, nil
}

// SeedTodos вставляет стартовые todos, если таблица пуста.
// Повторный запуск с -seed ничего не дублирует.
func (s *Storage) SeedTodos(ctx context.Context, todos []api.TodoPayload) error {
	count, err := s.CountTodos(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, payload := range todos {
		if _, err := s.CreateTodo(ctx, payload); err != nil {
			return fmt.Errorf("failed to seed todo %q: %w", payload.Title, err)
		}
	}

	return nil
}

// scanner abstracts *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanTodo(row scanner) (*api.Todo, error) {
	var (
		todo      api.Todo
		completed int
		createdAt int64
		updatedAt int64
	)

	if err := row.Scan(
		&todo.ID,
		&todo.UserID,
		&todo.Title,
		&completed,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	todo.Completed = completed != 0
	todo.CreatedAt = time.Unix(createdAt, 0).UTC()
	todo.UpdatedAt = time.Unix(updatedAt, 0).UTC()

	return &todo, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
