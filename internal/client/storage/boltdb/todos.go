package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/Jaymieblaze/my-todo-app/internal/client/storage"
	"github.com/Jaymieblaze/my-todo-app/internal/models"
)

// SaveTodo stores or replaces a todo in BoltDB (upsert by id)
func (s *Storage) SaveTodo(ctx context.Context, todo *models.Todo) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	// Сериализуем todo в JSON
	data, err := json.Marshal(todo)
	if err != nil {
		return fmt.Errorf("failed to marshal todo: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketTodos)
		if bucket == nil {
			return storage.ErrStorageClosed
		}

		// Сохраняем по ключу ID
		if err := bucket.Put(itob(todo.ID), data); err != nil {
			return fmt.Errorf("failed to save todo: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// GetTodo retrieves a todo by id
func (s *Storage) GetTodo(ctx context.Context, id int) (*models.Todo, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var todo *models.Todo

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketTodos)
		if bucket == nil {
			return storage.ErrTodoNotFound
		}

		data := bucket.Get(itob(id))
		if data == nil {
			return storage.ErrTodoNotFound
		}

		// Десериализуем
		todo = &models.Todo{}
		if err := json.Unmarshal(data, todo); err != nil {
			return fmt.Errorf("failed to unmarshal todo: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return todo, nil
}

// ListActiveTodos returns all todos that are not soft-deleted
func (s *Storage) ListActiveTodos(ctx context.Context) ([]*models.Todo, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var todos []*models.Todo

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketTodos)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var todo models.Todo
			if err := json.Unmarshal(v, &todo); err != nil {
				return fmt.Errorf("failed to unmarshal todo: %w", err)
			}

			// Фильтруем tombstones
			if !todo.Deleted {
				todos = append(todos, &todo)
			}

			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list active todos: %w", err)
	}

	return todos, nil
}

// BulkSaveTodos stores or replaces todos by id in a single transaction
func (s *Storage) BulkSaveTodos(ctx context.Context, todos []*models.Todo) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketTodos)
		if bucket == nil {
			return storage.ErrStorageClosed
		}

		for _, todo := range todos {
			data, err := json.Marshal(todo)
			if err != nil {
				return fmt.Errorf("failed to marshal todo %d: %w", todo.ID, err)
			}

			if err := bucket.Put(itob(todo.ID), data); err != nil {
				return fmt.Errorf("failed to save todo %d: %w", todo.ID, err)
			}
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("bulk save transaction failed: %w", err)
	}

	return nil
}

// UpdateTodo merges the patch into an existing record inside one transaction
func (s *Storage) UpdateTodo(ctx context.Context, id int, patch models.TodoPatch) (*models.Todo, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var updated *models.Todo

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketTodos)
		if bucket == nil {
			return storage.ErrTodoNotFound
		}

		// Получаем существующую запись
		data := bucket.Get(itob(id))
		if data == nil {
			return storage.ErrTodoNotFound
		}

		var todo models.Todo
		if err := json.Unmarshal(data, &todo); err != nil {
			return fmt.Errorf("failed to unmarshal todo: %w", err)
		}

		patch.Apply(&todo)

		// Сохраняем обратно
		updatedData, err := json.Marshal(&todo)
		if err != nil {
			return fmt.Errorf("failed to marshal updated todo: %w", err)
		}

		if err := bucket.Put(itob(id), updatedData); err != nil {
			return fmt.Errorf("failed to save updated todo: %w", err)
		}

		updated = &todo
		return nil
	})

	if err != nil {
		return nil, err
	}

	return updated, nil
}

// MaxTodoID returns the maximum todo id in the store, including tombstones.
// Keys are big-endian encoded ids, so the last cursor entry is the maximum.
func (s *Storage) MaxTodoID(ctx context.Context) (int, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var maxID int

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketTodos)
		if bucket == nil {
			return nil
		}

		k, _ := bucket.Cursor().Last()
		if k != nil {
			maxID = btoi(k)
		}

		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("failed to get max todo id: %w", err)
	}

	return maxID, nil
}
