package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jaymieblaze/my-todo-app/internal/client/storage"
	"github.com/Jaymieblaze/my-todo-app/internal/models"
)

// createTestOperation создает тестовую операцию
func createTestOperation(typ models.OpType, todoID int, ts time.Time) *models.PendingOperation {
	op := &models.PendingOperation{
		Type:      typ,
		TodoID:    todoID,
		Timestamp: ts,
	}
	if typ != models.OpDelete {
		op.Todo = createTestTodo(todoID, "payload", false)
	}
	return op
}

func TestStorage_EnqueueOperation_AssignsIncreasingOpIDs(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()
	now := time.Now().UTC()

	first, err := store.EnqueueOperation(ctx, createTestOperation(models.OpAdd, 301, now))
	require.NoError(t, err)

	second, err := store.EnqueueOperation(ctx, createTestOperation(models.OpUpdate, 301, now.Add(time.Second)))
	require.NoError(t, err)

	assert.Greater(t, second, first)
}

func TestStorage_ListOperations_TimestampOrder(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	// Вставляем не по порядку timestamp
	_, err := store.EnqueueOperation(ctx, createTestOperation(models.OpUpdate, 2, base.Add(2*time.Second)))
	require.NoError(t, err)
	_, err = store.EnqueueOperation(ctx, createTestOperation(models.OpAdd, 1, base))
	require.NoError(t, err)
	_, err = store.EnqueueOperation(ctx, createTestOperation(models.OpDelete, 3, base.Add(time.Second)))
	require.NoError(t, err)

	ops, err := store.ListOperations(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 3)

	assert.Equal(t, 1, ops[0].TodoID)
	assert.Equal(t, 3, ops[1].TodoID)
	assert.Equal(t, 2, ops[2].TodoID)
}

func TestStorage_ListOperations_EqualTimestampsUseOpID(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	// add и update для одной записи в один момент времени:
	// порядок вставки должен сохраниться
	_, err := store.EnqueueOperation(ctx, createTestOperation(models.OpAdd, 301, ts))
	require.NoError(t, err)
	_, err = store.EnqueueOperation(ctx, createTestOperation(models.OpUpdate, 301, ts))
	require.NoError(t, err)

	ops, err := store.ListOperations(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 2)

	assert.Equal(t, models.OpAdd, ops[0].Type)
	assert.Equal(t, models.OpUpdate, ops[1].Type)
}

func TestStorage_DequeueOperation(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	opID, err := store.EnqueueOperation(ctx, createTestOperation(models.OpAdd, 301, time.Now()))
	require.NoError(t, err)

	require.NoError(t, store.DequeueOperation(ctx, opID))

	ops, err := store.ListOperations(ctx)
	require.NoError(t, err)
	assert.Empty(t, ops)

	// Повторное удаление - ошибка
	err = store.DequeueOperation(ctx, opID)
	assert.ErrorIs(t, err, storage.ErrOperationNotFound)
}

func TestStorage_CountOperations(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	count, err := store.CountOperations(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	opID, err := store.EnqueueOperation(ctx, createTestOperation(models.OpAdd, 301, time.Now()))
	require.NoError(t, err)
	_, err = store.EnqueueOperation(ctx, createTestOperation(models.OpDelete, 5, time.Now()))
	require.NoError(t, err)

	count, err = store.CountOperations(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, store.DequeueOperation(ctx, opID))

	count, err = store.CountOperations(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestStorage_QueueSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	store, err := New(ctx, dbPath)
	require.NoError(t, err)

	_, err = store.EnqueueOperation(ctx, createTestOperation(models.OpAdd, 301, time.Now().UTC()))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Очередь переживает перезапуск: RemoteDeferred хранится, не в памяти
	reopened, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, reopened.Close())
	}()

	ops, err := reopened.ListOperations(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, models.OpAdd, ops[0].Type)
	assert.Equal(t, 301, ops[0].TodoID)
	require.NotNil(t, ops[0].Todo)
}
