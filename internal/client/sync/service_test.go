package sync

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/Jaymieblaze/my-todo-app/internal/client/api"
	"github.com/Jaymieblaze/my-todo-app/internal/client/netmon"
	"github.com/Jaymieblaze/my-todo-app/internal/client/storage"
	"github.com/Jaymieblaze/my-todo-app/internal/client/storage/boltdb"
	"github.com/Jaymieblaze/my-todo-app/internal/models"
	"github.com/Jaymieblaze/my-todo-app/internal/validation"
	"github.com/Jaymieblaze/my-todo-app/pkg/api"
)

// toggleMonitor is a Monitor whose state tests flip to simulate
// connectivity transitions.
type toggleMonitor struct {
	online atomic.Bool
}

func (m *toggleMonitor) State() netmon.State {
	if m.online.Load() {
		return netmon.StateOnline
	}
	return netmon.StateOffline
}

func (m *toggleMonitor) Subscribe(fn func(online bool)) {}

type testEnv struct {
	svc     Service
	store   *boltdb.Storage
	monitor *toggleMonitor
}

// newTestEnv wires a service over a real bbolt store so queue and todo
// state behave exactly as in production; only the gateway is mocked.
func newTestEnv(t *testing.T, gateway httpClient.ClientAPI, online bool) *testEnv {
	t.Helper()

	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})

	monitor := &toggleMonitor{}
	monitor.online.Store(online)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc, err := NewService(gateway, store, store, store, monitor, logger)
	require.NoError(t, err)

	return &testEnv{svc: svc, store: store, monitor: monitor}
}

// echoGateway returns a mock whose create/update echo the payload back,
// assigning serverID to created todos.
func echoGateway(serverID int) *httpClient.ClientAPIMock {
	return &httpClient.ClientAPIMock{
		CreateTodoFunc: func(ctx context.Context, payload api.TodoPayload) (*api.Todo, error) {
			return &api.Todo{
				ID:        serverID,
				Title:     payload.Title,
				UserID:    payload.UserID,
				Completed: payload.Completed,
				CreatedAt: payload.CreatedAt,
				UpdatedAt: payload.UpdatedAt,
			}, nil
		},
		UpdateTodoFunc: func(ctx context.Context, id int, payload api.TodoPayload) (*api.Todo, error) {
			return &api.Todo{
				ID:        id,
				Title:     payload.Title,
				UserID:    payload.UserID,
				Completed: payload.Completed,
				CreatedAt: payload.CreatedAt,
				UpdatedAt: payload.UpdatedAt,
			}, nil
		},
		DeleteTodoFunc: func(ctx context.Context, id int) error {
			return nil
		},
	}
}

func networkErr() error {
	return &httpClient.Error{Err: errors.New("connection refused")}
}

func TestService_Add_Offline(t *testing.T) {
	ctx := context.Background()
	// паникующий mock гарантирует, что offline add не ходит в сеть
	env := newTestEnv(t, &httpClient.ClientAPIMock{}, false)

	todo, err := env.svc.Add(ctx, "Buy milk", 1)
	require.NoError(t, err)
	assert.Equal(t, 201, todo.ID)
	assert.Equal(t, "Buy milk", todo.Title)
	assert.False(t, todo.Synced)

	second, err := env.svc.Add(ctx, "Walk the dog", 1)
	require.NoError(t, err)
	assert.Equal(t, 202, second.ID)

	count, err := env.svc.PendingCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestService_Add_EmptyTitle(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, &httpClient.ClientAPIMock{}, false)

	tests := []string{"", "   ", "\t\n"}
	for _, title := range tests {
		_, err := env.svc.Add(ctx, title, 1)
		require.ErrorIs(t, err, validation.ErrEmptyTitle)
	}

	// rejection happens before any local write
	todos, err := env.svc.ListTodos(ctx)
	require.NoError(t, err)
	assert.Empty(t, todos)

	count, err := env.svc.PendingCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestService_Add_Online(t *testing.T) {
	ctx := context.Background()
	gateway := echoGateway(9999)
	env := newTestEnv(t, gateway, true)

	todo, err := env.svc.Add(ctx, "Buy milk", 1)
	require.NoError(t, err)

	// локальный id остается каноническим, server id не подменяет его
	assert.Equal(t, 201, todo.ID)
	assert.True(t, todo.Synced)
	assert.Equal(t, "Buy milk", todo.Title)

	count, err := env.svc.PendingCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.Len(t, gateway.CreateTodoCalls(), 1)
	assert.Equal(t, "Buy milk", gateway.CreateTodoCalls()[0].Payload.Title)
}

func TestService_OfflineAddThenReconnect(t *testing.T) {
	ctx := context.Background()
	gateway := echoGateway(9999)
	env := newTestEnv(t, gateway, false)

	todo, err := env.svc.Add(ctx, "Buy milk", 1)
	require.NoError(t, err)
	require.Equal(t, 201, todo.ID)
	require.False(t, todo.Synced)
	require.Empty(t, gateway.CreateTodoCalls())

	// переход в online
	env.monitor.online.Store(true)

	result, err := env.svc.Replay(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Attempted)
	assert.Equal(t, 1, result.Completed)
	assert.Zero(t, result.Failed)

	synced, err := env.svc.GetTodo(ctx, 201)
	require.NoError(t, err)
	assert.True(t, synced.Synced)

	count, err := env.svc.PendingCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestService_DeleteOfflineThenReconnect(t *testing.T) {
	ctx := context.Background()
	gateway := echoGateway(0)
	env := newTestEnv(t, gateway, false)

	// synced todo, как будто получен с сервера ранее
	require.NoError(t, env.store.SaveTodo(ctx, &models.Todo{
		ID:     5,
		Title:  "Existing",
		UserID: 1,
		Synced: true,
	}))

	require.NoError(t, env.svc.Delete(ctx, 5))

	_, err := env.svc.GetTodo(ctx, 5)
	assert.ErrorIs(t, err, storage.ErrTodoNotFound)

	todos, err := env.svc.ListTodos(ctx)
	require.NoError(t, err)
	assert.Empty(t, todos)

	count, err := env.svc.PendingCount(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	env.monitor.online.Store(true)

	result, err := env.svc.Replay(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Completed)
	require.Len(t, gateway.DeleteTodoCalls(), 1)
	assert.Equal(t, 5, gateway.DeleteTodoCalls()[0].ID)

	count, err = env.svc.PendingCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	// подтвержденный тумбстоун остается в хранилище
	row, err := env.store.GetTodo(ctx, 5)
	require.NoError(t, err)
	assert.True(t, row.Deleted)
	assert.True(t, row.Synced)
}

func TestService_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, &httpClient.ClientAPIMock{}, false)

	title := "nope"
	_, err := env.svc.Update(ctx, 999, api.TodoPatch{Title: &title})
	assert.ErrorIs(t, err, storage.ErrTodoNotFound)

	assert.ErrorIs(t, env.svc.Delete(ctx, 999), storage.ErrTodoNotFound)
}

func TestService_Update_Offline(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, &httpClient.ClientAPIMock{}, false)

	todo, err := env.svc.Add(ctx, "Draft", 1)
	require.NoError(t, err)

	completed := true
	updated, err := env.svc.Update(ctx, todo.ID, api.TodoPatch{Completed: &completed})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.False(t, updated.Synced)

	count, err := env.svc.PendingCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count) // add + update
}

func TestService_Replay_Idempotent(t *testing.T) {
	ctx := context.Background()
	gateway := echoGateway(9999)
	env := newTestEnv(t, gateway, false)

	_, err := env.svc.Add(ctx, "Buy milk", 1)
	require.NoError(t, err)
	env.monitor.online.Store(true)

	first, err := env.svc.Replay(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, first.Completed)
	callsAfterFirst := len(gateway.CreateTodoCalls())

	second, err := env.svc.Replay(ctx)
	require.NoError(t, err)
	assert.Zero(t, second.Attempted)
	assert.Len(t, gateway.CreateTodoCalls(), callsAfterFirst)
}

func TestService_Replay_TimestampOrder(t *testing.T) {
	ctx := context.Background()

	var order []string
	gateway := echoGateway(0)
	gateway.CreateTodoFunc = func(ctx context.Context, payload api.TodoPayload) (*api.Todo, error) {
		order = append(order, payload.Title)
		return &api.Todo{ID: 1, Title: payload.Title, UserID: payload.UserID}, nil
	}

	env := newTestEnv(t, gateway, false)
	for _, title := range []string{"first", "second", "third"} {
		_, err := env.svc.Add(ctx, title, 1)
		require.NoError(t, err)
		time.Sleep(time.Millisecond) // гарантируем различимые timestamps
	}

	env.monitor.online.Store(true)
	result, err := env.svc.Replay(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, result.Completed)

	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestService_Replay_FailureBlocksSameID(t *testing.T) {
	ctx := context.Background()

	gateway := echoGateway(0)
	gateway.CreateTodoFunc = func(ctx context.Context, payload api.TodoPayload) (*api.Todo, error) {
		if payload.Title == "flaky" {
			return nil, networkErr()
		}
		return &api.Todo{ID: 1, Title: payload.Title, UserID: payload.UserID}, nil
	}

	env := newTestEnv(t, gateway, false)

	flaky, err := env.svc.Add(ctx, "flaky", 1)
	require.NoError(t, err)
	time.Sleep(time.Millisecond)

	completed := true
	_, err = env.svc.Update(ctx, flaky.ID, api.TodoPatch{Completed: &completed})
	require.NoError(t, err)
	time.Sleep(time.Millisecond)

	_, err = env.svc.Add(ctx, "independent", 1)
	require.NoError(t, err)

	env.monitor.online.Store(true)
	result, err := env.svc.Replay(ctx)
	require.NoError(t, err)

	// неудавшийся add блокирует update того же todo, но не чужой add
	assert.Equal(t, 2, result.Attempted)
	assert.Equal(t, 1, result.Completed)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 1, result.Skipped)
	assert.Empty(t, gateway.UpdateTodoCalls())

	count, err := env.svc.PendingCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestService_Replay_SingleFlight(t *testing.T) {
	ctx := context.Background()

	release := make(chan struct{})
	started := make(chan struct{})
	gateway := echoGateway(0)
	gateway.CreateTodoFunc = func(ctx context.Context, payload api.TodoPayload) (*api.Todo, error) {
		close(started)
		<-release
		return &api.Todo{ID: 1, Title: payload.Title, UserID: payload.UserID}, nil
	}

	env := newTestEnv(t, gateway, false)
	_, err := env.svc.Add(ctx, "Buy milk", 1)
	require.NoError(t, err)
	env.monitor.online.Store(true)

	done := make(chan *ReplayResult)
	go func() {
		result, err := env.svc.Replay(ctx)
		assert.NoError(t, err)
		done <- result
	}()

	<-started

	// пересекающийся вызов не делает дублирующих сетевых запросов
	overlapping, err := env.svc.Replay(ctx)
	require.NoError(t, err)
	assert.Zero(t, overlapping.Attempted)

	close(release)
	first := <-done
	assert.Equal(t, 1, first.Completed)
	assert.Len(t, gateway.CreateTodoCalls(), 1)
}

func TestService_ListTodos_RefreshSkipsPending(t *testing.T) {
	ctx := context.Background()

	gateway := echoGateway(0)
	env := newTestEnv(t, gateway, false)

	// локальная правка в очереди
	local, err := env.svc.Add(ctx, "local edit", 1)
	require.NoError(t, err)
	require.Equal(t, 201, local.ID)

	gateway.FetchTodosFunc = func(ctx context.Context) ([]api.Todo, error) {
		return []api.Todo{
			{ID: 1, Title: "server row", UserID: 1},
			{ID: 201, Title: "server version must not win", UserID: 1},
		}, nil
	}

	env.monitor.online.Store(true)
	todos, err := env.svc.ListTodos(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 2)

	byID := make(map[int]*models.Todo, len(todos))
	for _, todo := range todos {
		byID[todo.ID] = todo
	}
	assert.Equal(t, "server row", byID[1].Title)
	assert.Equal(t, "local edit", byID[201].Title)
	assert.False(t, byID[201].Synced)
}

func TestService_ListTodos_FallbackOnFetchError(t *testing.T) {
	ctx := context.Background()

	gateway := echoGateway(0)
	gateway.FetchTodosFunc = func(ctx context.Context) ([]api.Todo, error) {
		return nil, networkErr()
	}

	env := newTestEnv(t, gateway, false)
	_, err := env.svc.Add(ctx, "Survivor", 1)
	require.NoError(t, err)

	env.monitor.online.Store(true)
	todos, err := env.svc.ListTodos(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, "Survivor", todos[0].Title)
}

func TestService_IDCounter(t *testing.T) {
	ctx := context.Background()

	t.Run("seeded from store", func(t *testing.T) {
		env := newTestEnv(t, &httpClient.ClientAPIMock{}, false)
		require.NoError(t, env.store.SaveTodo(ctx, &models.Todo{ID: 500, Title: "old", UserID: 1}))

		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		svc, err := NewService(&httpClient.ClientAPIMock{}, env.store, env.store, env.store, env.monitor, logger)
		require.NoError(t, err)

		todo, err := svc.Add(ctx, "next", 1)
		require.NoError(t, err)
		assert.Equal(t, 501, todo.ID)
	})

	t.Run("advanced past fetched max", func(t *testing.T) {
		gateway := echoGateway(0)
		gateway.FetchTodosFunc = func(ctx context.Context) ([]api.Todo, error) {
			return []api.Todo{{ID: 350, Title: "server", UserID: 1}}, nil
		}

		env := newTestEnv(t, gateway, true)
		_, err := env.svc.ListTodos(ctx)
		require.NoError(t, err)

		env.monitor.online.Store(false)
		todo, err := env.svc.Add(ctx, "after fetch", 1)
		require.NoError(t, err)
		assert.Equal(t, 351, todo.ID)
	})
}

func TestService_LastReplayTime(t *testing.T) {
	ctx := context.Background()
	gateway := echoGateway(0)
	env := newTestEnv(t, gateway, false)

	zero, err := env.svc.LastReplayTime(ctx)
	require.NoError(t, err)
	assert.True(t, zero.IsZero())

	_, err = env.svc.Add(ctx, "Buy milk", 1)
	require.NoError(t, err)
	env.monitor.online.Store(true)

	_, err = env.svc.Replay(ctx)
	require.NoError(t, err)

	ts, err := env.svc.LastReplayTime(ctx)
	require.NoError(t, err)
	assert.False(t, ts.IsZero())
	assert.WithinDuration(t, time.Now().UTC(), ts, 5*time.Second)
}
