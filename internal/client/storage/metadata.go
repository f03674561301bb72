package storage

import (
	"context"
	"time"
)

//go:generate moq -out metadatastorage_mock.go . MetadataStorage

// MetadataStorage defines the interface for client instance metadata
type MetadataStorage interface {
	// ClientID returns the stable identifier of this client instance,
	// creating it on first use
	ClientID(ctx context.Context) (string, error)

	// SaveLastReplayTime saves the wall-clock time of the last replay pass
	// that drained the queue without failures
	SaveLastReplayTime(ctx context.Context, t time.Time) error

	// GetLastReplayTime retrieves the time of the last successful replay.
	// Returns the zero time if no replay has succeeded yet.
	GetLastReplayTime(ctx context.Context) (time.Time, error)
}
