package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpType_String(t *testing.T) {
	tests := []struct {
		name string
		want string
		typ  OpType
	}{
		{name: "add", typ: OpAdd, want: "add"},
		{name: "update", typ: OpUpdate, want: "update"},
		{name: "delete", typ: OpDelete, want: "delete"},
		{name: "unknown", typ: OpType(42), want: "optype(42)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.typ.String())
		})
	}
}

func TestOpType_JSONRoundTrip(t *testing.T) {
	for _, typ := range []OpType{OpAdd, OpUpdate, OpDelete} {
		data, err := json.Marshal(typ)
		require.NoError(t, err)

		var decoded OpType
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, typ, decoded)
	}
}

func TestOpType_MarshalUnknown(t *testing.T) {
	_, err := json.Marshal(OpType(0))
	assert.Error(t, err)
}

func TestOpType_UnmarshalUnknownTag(t *testing.T) {
	var typ OpType
	err := json.Unmarshal([]byte(`"upsert"`), &typ)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown operation type")
}

func TestPendingOperation_JSONRoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	op := &PendingOperation{
		OpID:      7,
		Type:      OpAdd,
		TodoID:    301,
		Timestamp: now,
		Todo: &Todo{
			ID:        301,
			Title:     "Buy milk",
			UserID:    1,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	data, err := json.Marshal(op)
	require.NoError(t, err)

	var decoded PendingOperation
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, op.OpID, decoded.OpID)
	assert.Equal(t, op.Type, decoded.Type)
	assert.Equal(t, op.TodoID, decoded.TodoID)
	require.NotNil(t, decoded.Todo)
	assert.Equal(t, "Buy milk", decoded.Todo.Title)
}

func TestPendingOperation_DeleteHasNoPayload(t *testing.T) {
	op := &PendingOperation{OpID: 1, Type: OpDelete, TodoID: 5, Timestamp: time.Now()}

	data, err := json.Marshal(op)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"data"`)
}
