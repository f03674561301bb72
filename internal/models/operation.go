package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// OpType identifies the kind of a queued mutation. It is a closed enum so
// replay logic can match it exhaustively instead of comparing strings.
type OpType int

// Pending operation types
const (
	OpAdd OpType = iota + 1
	OpUpdate
	OpDelete
)

// String returns the wire name of the operation type
func (t OpType) String() string {
	switch t {
	case OpAdd:
		return "add"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	default:
		return fmt.Sprintf("optype(%d)", int(t))
	}
}

// Valid reports whether t is one of the known operation types
func (t OpType) Valid() bool {
	switch t {
	case OpAdd, OpUpdate, OpDelete:
		return true
	default:
		return false
	}
}

// MarshalJSON encodes the type under its wire name
func (t OpType) MarshalJSON() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("cannot marshal unknown operation type %d", int(t))
	}
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a wire name back into the enum, rejecting
// unknown tags so a corrupted queue record fails loudly.
func (t *OpType) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("failed to unmarshal operation type: %w", err)
	}

	switch name {
	case "add":
		*t = OpAdd
	case "update":
		*t = OpUpdate
	case "delete":
		*t = OpDelete
	default:
		return fmt.Errorf("unknown operation type %q", name)
	}
	return nil
}

// PendingOperation is one queued mutation awaiting remote confirmation.
//
// OpID is assigned by the queue in insertion order. Todo holds the payload
// replayed against the remote resource for add and update operations and is
// nil for deletes. An operation is removed from the queue only after the
// remote gateway acknowledges it.
type PendingOperation struct {
	Timestamp time.Time `json:"timestamp"`
	Todo      *Todo     `json:"data,omitempty"`
	OpID      uint64    `json:"opId"`
	TodoID    int       `json:"todoId"`
	Type      OpType    `json:"type"`
}
