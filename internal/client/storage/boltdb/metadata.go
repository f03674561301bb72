package boltdb

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/Jaymieblaze/my-todo-app/internal/client/storage"
)

var (
	// Metadata bucket keys
	keyClientID     = []byte("client_id")
	keyLastReplayAt = []byte("last_replay_at")
)

// ClientID returns the stable identifier of this client instance.
// The id is generated on first use and persisted, so the same database file
// always presents the same identity to the remote resource.
func (s *Storage) ClientID(ctx context.Context) (string, error) {
	if s.db == nil {
		return "", storage.ErrStorageClosed
	}

	var clientID string

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return storage.ErrStorageClosed
		}

		if data := bucket.Get(keyClientID); data != nil {
			clientID = string(data)
			return nil
		}

		// Первое использование - генерируем и сохраняем
		clientID = uuid.New().String()
		if err := bucket.Put(keyClientID, []byte(clientID)); err != nil {
			return fmt.Errorf("failed to save client id: %w", err)
		}

		return nil
	})

	if err != nil {
		return "", fmt.Errorf("failed to get client id: %w", err)
	}

	return clientID, nil
}

// SaveLastReplayTime saves the time of the last fully successful replay pass
func (s *Storage) SaveLastReplayTime(ctx context.Context, t time.Time) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return storage.ErrStorageClosed
		}

		value := t.UTC().Format(time.RFC3339Nano)
		if err := bucket.Put(keyLastReplayAt, []byte(value)); err != nil {
			return fmt.Errorf("failed to save last replay time: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("failed to save last replay time: %w", err)
	}

	return nil
}

// GetLastReplayTime retrieves the time of the last fully successful replay.
// Returns the zero time if no replay has succeeded yet.
func (s *Storage) GetLastReplayTime(ctx context.Context) (time.Time, error) {
	if s.db == nil {
		return time.Time{}, storage.ErrStorageClosed
	}

	var lastReplay time.Time

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return nil
		}

		data := bucket.Get(keyLastReplayAt)
		if data == nil {
			return nil
		}

		parsed, err := time.Parse(time.RFC3339Nano, string(data))
		if err != nil {
			return fmt.Errorf("failed to parse last replay time: %w", err)
		}

		lastReplay = parsed
		return nil
	})

	if err != nil {
		return time.Time{}, err
	}

	return lastReplay, nil
}
