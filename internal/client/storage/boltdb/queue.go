package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"sort"

	"go.etcd.io/bbolt"

	"github.com/Jaymieblaze/my-todo-app/internal/client/storage"
	"github.com/Jaymieblaze/my-todo-app/internal/models"
)

// u64tob encodes an opId as a big-endian queue key
func u64tob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

// EnqueueOperation appends an operation to the pending queue.
// The opId comes from the bucket sequence, so insertion order is preserved
// and the assignment is part of the same transaction as the write.
func (s *Storage) EnqueueOperation(ctx context.Context, op *models.PendingOperation) (uint64, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var opID uint64

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPendingOps)
		if bucket == nil {
			return storage.ErrStorageClosed
		}

		seq, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to get next sequence: %w", err)
		}
		op.OpID = seq

		data, err := json.Marshal(op)
		if err != nil {
			return fmt.Errorf("failed to marshal operation: %w", err)
		}

		if err := bucket.Put(u64tob(seq), data); err != nil {
			return fmt.Errorf("failed to save operation: %w", err)
		}

		opID = seq
		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("enqueue transaction failed: %w", err)
	}

	return opID, nil
}

// ListOperations returns all queued operations ordered by timestamp
// ascending, with opId as the tie-break for equal timestamps
func (s *Storage) ListOperations(ctx context.Context) ([]*models.PendingOperation, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var ops []*models.PendingOperation

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPendingOps)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var op models.PendingOperation
			if err := json.Unmarshal(v, &op); err != nil {
				return fmt.Errorf("failed to unmarshal operation: %w", err)
			}
			ops = append(ops, &op)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list operations: %w", err)
	}

	sort.Slice(ops, func(i, j int) bool {
		if ops[i].Timestamp.Equal(ops[j].Timestamp) {
			return ops[i].OpID < ops[j].OpID
		}
		return ops[i].Timestamp.Before(ops[j].Timestamp)
	})

	return ops, nil
}

// DequeueOperation removes a confirmed operation from the queue
func (s *Storage) DequeueOperation(ctx context.Context, opID uint64) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPendingOps)
		if bucket == nil {
			return storage.ErrOperationNotFound
		}

		key := u64tob(opID)
		if bucket.Get(key) == nil {
			return storage.ErrOperationNotFound
		}

		if err := bucket.Delete(key); err != nil {
			return fmt.Errorf("failed to delete operation: %w", err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	return nil
}

// CountOperations returns the number of queued operations
func (s *Storage) CountOperations(ctx context.Context) (int, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var count int

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPendingOps)
		if bucket == nil {
			return nil
		}

		count = bucket.Stats().KeyN
		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("failed to count operations: %w", err)
	}

	return count, nil
}
