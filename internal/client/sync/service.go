// Package sync реализует offline-first синхронизацию локального хранилища
// с удаленным todos ресурсом.
//
// Every mutation is applied to the local store first and queued as a
// pending operation; the queue is drained against the remote gateway
// whenever the client is online. The local id stays canonical for the
// lifetime of a record: a confirmed sync merges server fields in but never
// replaces the id, so queued operations always resolve their target.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	stdsync "sync"
	"time"

	httpClient "github.com/Jaymieblaze/my-todo-app/internal/client/api"
	"github.com/Jaymieblaze/my-todo-app/internal/client/netmon"
	"github.com/Jaymieblaze/my-todo-app/internal/client/storage"
	"github.com/Jaymieblaze/my-todo-app/internal/models"
	"github.com/Jaymieblaze/my-todo-app/internal/validation"
	"github.com/Jaymieblaze/my-todo-app/pkg/api"
)

//go:generate moq -out service_mock.go . Service

// idFloor is the first id handed out for locally created todos. The remote
// seed collection tops out well below it, so locally assigned ids never
// collide with server-assigned ones.
const idFloor = 201

// Service определяет интерфейс синхронизатора. Это единственная точка,
// через которую внешний слой читает и мутирует todos.
//
// Error contract: validation and local storage errors propagate to the
// caller; network errors never do — a failed remote call leaves the
// operation queued for the next replay.
type Service interface {
	// Add creates a todo with a locally allocated id and queues it for sync
	Add(ctx context.Context, title string, userID int) (*models.Todo, error)

	// Update merges the patch into an existing todo and queues the new state.
	// Returns storage.ErrTodoNotFound if the id is absent or tombstoned.
	Update(ctx context.Context, id int, patch api.TodoPatch) (*models.Todo, error)

	// Delete tombstones a todo and queues the remote delete.
	// Returns storage.ErrTodoNotFound if the id is absent or tombstoned.
	Delete(ctx context.Context, id int) error

	// GetTodo returns a single non-deleted todo from the local store
	GetTodo(ctx context.Context, id int) (*models.Todo, error)

	// ListTodos returns the active todo set. When online it first refreshes
	// the local store from the remote collection; a failed refresh falls
	// back to local data without surfacing an error.
	ListTodos(ctx context.Context) ([]*models.Todo, error)

	// Replay drains the pending-operation queue against the remote gateway.
	// Only one drain runs at a time: an overlapping call returns an empty
	// result without issuing any network requests.
	Replay(ctx context.Context) (*ReplayResult, error)

	// PendingCount возвращает количество операций, ожидающих синхронизации
	PendingCount(ctx context.Context) (int, error)

	// LastReplayTime returns the time of the last replay pass that drained
	// the queue without failures, or the zero time if none has.
	LastReplayTime(ctx context.Context) (time.Time, error)
}

// ReplayResult contains the counters of one drain pass.
type ReplayResult struct {
	Attempted int // операции, для которых был выполнен сетевой вызов
	Completed int // подтвержденные и удаленные из очереди операции
	Failed    int // операции, оставшиеся в очереди после ошибки
	Skipped   int // операции, пропущенные из-за более ранней ошибки по тому же id
}

type service struct {
	gateway  httpClient.ClientAPI
	todos    storage.TodoStorage
	queue    storage.QueueStorage
	metadata storage.MetadataStorage
	monitor  netmon.Monitor
	logger   *slog.Logger

	// idMu guards nextID, the counter for locally allocated todo ids
	idMu   stdsync.Mutex
	nextID int

	// replayMu makes Replay single-flight
	replayMu stdsync.Mutex
}

// NewService creates the synchronizer. The id counter is seeded from the
// maximum id already present in the local store, floored at idFloor.
func NewService(
	gateway httpClient.ClientAPI,
	todos storage.TodoStorage,
	queue storage.QueueStorage,
	metadata storage.MetadataStorage,
	monitor netmon.Monitor,
	logger *slog.Logger,
) (Service, error) {
	maxID, err := todos.MaxTodoID(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to seed id counter: %w", err)
	}

	s := &service{
		gateway:  gateway,
		todos:    todos,
		queue:    queue,
		metadata: metadata,
		monitor:  monitor,
		logger:   logger,
		nextID:   idFloor,
	}
	s.advanceIDCounter(maxID)

	return s, nil
}

// allocateID выдает следующий локальный id.
func (s *service) allocateID() int {
	s.idMu.Lock()
	defer s.idMu.Unlock()
	id := s.nextID
	s.nextID++
	return id
}

// advanceIDCounter moves the counter past the given id if needed, so ids
// observed from the server are never handed out locally.
func (s *service) advanceIDCounter(observed int) {
	s.idMu.Lock()
	defer s.idMu.Unlock()
	if observed >= s.nextID {
		s.nextID = observed + 1
	}
}

func (s *service) Add(ctx context.Context, title string, userID int) (*models.Todo, error) {
	if err := validation.ValidateTitle(title); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	todo := &models.Todo{
		ID:        s.allocateID(),
		Title:     strings.TrimSpace(title),
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.todos.SaveTodo(ctx, todo); err != nil {
		return nil, fmt.Errorf("failed to save todo: %w", err)
	}

	op := &models.PendingOperation{
		Type:      models.OpAdd,
		TodoID:    todo.ID,
		Todo:      todo.Clone(),
		Timestamp: now,
	}
	if _, err := s.queue.EnqueueOperation(ctx, op); err != nil {
		return nil, fmt.Errorf("failed to enqueue operation: %w", err)
	}

	s.logger.Info("todo added locally", "id", todo.ID, "online", s.online())

	return s.settle(ctx, todo), nil
}

func (s *service) Update(ctx context.Context, id int, patch api.TodoPatch) (*models.Todo, error) {
	if patch.Title != nil {
		if err := validation.ValidateTitle(*patch.Title); err != nil {
			return nil, err
		}
	}

	current, err := s.GetTodo(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	unsynced := false
	updated, err := s.todos.UpdateTodo(ctx, current.ID, models.TodoPatch{
		Title:     patch.Title,
		Completed: patch.Completed,
		UserID:    patch.UserID,
		Synced:    &unsynced,
		UpdatedAt: &now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}

	op := &models.PendingOperation{
		Type:      models.OpUpdate,
		TodoID:    id,
		Todo:      updated.Clone(),
		Timestamp: now,
	}
	if _, err := s.queue.EnqueueOperation(ctx, op); err != nil {
		return nil, fmt.Errorf("failed to enqueue operation: %w", err)
	}

	s.logger.Info("todo updated locally", "id", id, "online", s.online())

	return s.settle(ctx, updated), nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	if _, err := s.GetTodo(ctx, id); err != nil {
		return err
	}

	now := time.Now().UTC()
	deleted, unsynced := true, false
	if _, err := s.todos.UpdateTodo(ctx, id, models.TodoPatch{
		Deleted:   &deleted,
		Synced:    &unsynced,
		UpdatedAt: &now,
	}); err != nil {
		return fmt.Errorf("failed to tombstone todo: %w", err)
	}

	op := &models.PendingOperation{
		Type:      models.OpDelete,
		TodoID:    id,
		Timestamp: now,
	}
	if _, err := s.queue.EnqueueOperation(ctx, op); err != nil {
		return fmt.Errorf("failed to enqueue operation: %w", err)
	}

	s.logger.Info("todo deleted locally", "id", id, "online", s.online())

	if s.online() {
		s.drain(ctx)
	}
	return nil
}

func (s *service) GetTodo(ctx context.Context, id int) (*models.Todo, error) {
	todo, err := s.todos.GetTodo(ctx, id)
	if err != nil {
		return nil, err
	}
	// Тумбстоуны скрыты от внешнего слоя
	if todo.Deleted {
		return nil, storage.ErrTodoNotFound
	}
	return todo, nil
}

func (s *service) ListTodos(ctx context.Context) ([]*models.Todo, error) {
	if s.online() {
		if err := s.refresh(ctx); err != nil {
			// Неудачный fetch не мешает отрисовке локальных данных
			s.logger.Warn("remote refresh failed, serving local data", "error", err)
		}
	}
	return s.todos.ListActiveTodos(ctx)
}

// refresh pulls the remote collection into the local store. Rows with a
// queued pending operation are skipped so local edits are never clobbered
// by the read path.
func (s *service) refresh(ctx context.Context) error {
	remote, err := s.gateway.FetchTodos(ctx)
	if err != nil {
		return err
	}

	ops, err := s.queue.ListOperations(ctx)
	if err != nil {
		return fmt.Errorf("failed to list pending operations: %w", err)
	}
	pending := make(map[int]struct{}, len(ops))
	for _, op := range ops {
		pending[op.TodoID] = struct{}{}
	}

	maxID := 0
	todos := make([]*models.Todo, 0, len(remote))
	for _, rt := range remote {
		if rt.ID > maxID {
			maxID = rt.ID
		}
		if _, ok := pending[rt.ID]; ok {
			continue
		}
		todos = append(todos, &models.Todo{
			ID:        rt.ID,
			Title:     rt.Title,
			UserID:    rt.UserID,
			Completed: rt.Completed,
			CreatedAt: rt.CreatedAt,
			UpdatedAt: rt.UpdatedAt,
			Synced:    true,
		})
	}

	if err := s.todos.BulkSaveTodos(ctx, todos); err != nil {
		return fmt.Errorf("failed to save fetched todos: %w", err)
	}
	s.advanceIDCounter(maxID)

	s.logger.Debug("refreshed local store from remote",
		"fetched", len(remote),
		"saved", len(todos),
		"skipped_pending", len(remote)-len(todos))

	return nil
}

func (s *service) Replay(ctx context.Context) (*ReplayResult, error) {
	if !s.replayMu.TryLock() {
		s.logger.Debug("replay already in flight, skipping")
		return &ReplayResult{}, nil
	}
	defer s.replayMu.Unlock()

	ops, err := s.queue.ListOperations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending operations: %w", err)
	}
	if len(ops) == 0 {
		return &ReplayResult{}, nil
	}

	s.logger.Info("replaying pending operations", "count", len(ops))

	result := &ReplayResult{}
	// Id, по которому операция не прошла, блокирует последующие операции
	// того же todo до конца прохода: update не должен уйти раньше своего
	// неподтвержденного add.
	blocked := make(map[int]struct{})

	for _, op := range ops {
		if _, ok := blocked[op.TodoID]; ok {
			result.Skipped++
			continue
		}

		result.Attempted++
		if err := s.replayOne(ctx, op); err != nil {
			result.Failed++
			blocked[op.TodoID] = struct{}{}
			s.logger.Warn("operation replay failed, keeping queued",
				"op_id", op.OpID,
				"type", op.Type.String(),
				"todo_id", op.TodoID,
				"error", err)
			continue
		}

		if err := s.queue.DequeueOperation(ctx, op.OpID); err != nil && !errors.Is(err, storage.ErrOperationNotFound) {
			return nil, fmt.Errorf("failed to dequeue operation %d: %w", op.OpID, err)
		}
		result.Completed++
	}

	if result.Failed == 0 {
		if err := s.metadata.SaveLastReplayTime(ctx, time.Now().UTC()); err != nil {
			s.logger.Warn("failed to save last replay time", "error", err)
		}
	}

	s.logger.Info("replay finished",
		"attempted", result.Attempted,
		"completed", result.Completed,
		"failed", result.Failed,
		"skipped", result.Skipped)

	return result, nil
}

// replayOne выполняет один сетевой вызов и сливает подтвержденные сервером
// поля в локальную запись, сохраняя локальный id.
func (s *service) replayOne(ctx context.Context, op *models.PendingOperation) error {
	switch op.Type {
	case models.OpAdd:
		if op.Todo == nil {
			return fmt.Errorf("add operation %d has no payload", op.OpID)
		}
		resp, err := s.gateway.CreateTodo(ctx, payloadOf(op.Todo))
		if err != nil {
			return err
		}
		return s.mergeConfirmed(ctx, op.TodoID, resp)

	case models.OpUpdate:
		if op.Todo == nil {
			return fmt.Errorf("update operation %d has no payload", op.OpID)
		}
		resp, err := s.gateway.UpdateTodo(ctx, op.TodoID, payloadOf(op.Todo))
		if err != nil {
			return err
		}
		return s.mergeConfirmed(ctx, op.TodoID, resp)

	case models.OpDelete:
		if err := s.gateway.DeleteTodo(ctx, op.TodoID); err != nil {
			return err
		}
		// Подтвержденный тумбстоун остается в хранилище
		synced := true
		if _, err := s.todos.UpdateTodo(ctx, op.TodoID, models.TodoPatch{Synced: &synced}); err != nil {
			return fmt.Errorf("failed to confirm tombstone: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("unknown operation type %d for op %d", int(op.Type), op.OpID)
	}
}

// mergeConfirmed merges the server response into the local record. The
// local id stays canonical even when the server assigned a different one.
func (s *service) mergeConfirmed(ctx context.Context, todoID int, resp *api.Todo) error {
	synced := true
	patch := models.TodoPatch{
		Title:     &resp.Title,
		Completed: &resp.Completed,
		UserID:    &resp.UserID,
		Synced:    &synced,
	}
	if !resp.UpdatedAt.IsZero() {
		patch.UpdatedAt = &resp.UpdatedAt
	}
	if _, err := s.todos.UpdateTodo(ctx, todoID, patch); err != nil {
		return fmt.Errorf("failed to merge confirmed todo %d: %w", todoID, err)
	}
	return nil
}

func (s *service) PendingCount(ctx context.Context) (int, error) {
	return s.queue.CountOperations(ctx)
}

func (s *service) LastReplayTime(ctx context.Context) (time.Time, error) {
	return s.metadata.GetLastReplayTime(ctx)
}

func (s *service) online() bool {
	return s.monitor.State() == netmon.StateOnline
}

// settle attempts an immediate drain after a successful local write and
// returns the freshest available copy of the record. Drain errors are
// swallowed: the operation is durably queued either way.
func (s *service) settle(ctx context.Context, todo *models.Todo) *models.Todo {
	if !s.online() {
		return todo
	}
	s.drain(ctx)
	if fresh, err := s.todos.GetTodo(ctx, todo.ID); err == nil {
		return fresh
	}
	return todo
}

// drain runs a replay pass, логируя ошибки вместо возврата.
func (s *service) drain(ctx context.Context) {
	if _, err := s.Replay(ctx); err != nil {
		s.logger.Warn("queue drain failed", "error", err)
	}
}

// payloadOf converts a local record into the wire payload replayed
// against the remote resource.
func payloadOf(t *models.Todo) api.TodoPayload {
	return api.TodoPayload{
		Title:     t.Title,
		UserID:    t.UserID,
		Completed: t.Completed,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
