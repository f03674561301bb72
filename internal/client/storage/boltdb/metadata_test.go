package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage_ClientID_CreatedOnFirstUse(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	id, err := store.ClientID(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	// Валидный UUID
	_, err = uuid.Parse(id)
	assert.NoError(t, err)

	// Повторный вызов возвращает тот же id
	again, err := store.ClientID(ctx)
	require.NoError(t, err)
	assert.Equal(t, id, again)
}

func TestStorage_ClientID_StableAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	store, err := New(ctx, dbPath)
	require.NoError(t, err)

	id, err := store.ClientID(ctx)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, reopened.Close())
	}()

	again, err := reopened.ClientID(ctx)
	require.NoError(t, err)
	assert.Equal(t, id, again)
}

func TestStorage_LastReplayTime(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	// До первой синхронизации - нулевое время
	lastReplay, err := store.GetLastReplayTime(ctx)
	require.NoError(t, err)
	assert.True(t, lastReplay.IsZero())

	now := time.Now().UTC().Truncate(time.Millisecond)
	require.NoError(t, store.SaveLastReplayTime(ctx, now))

	lastReplay, err = store.GetLastReplayTime(ctx)
	require.NoError(t, err)
	assert.True(t, now.Equal(lastReplay))
}
