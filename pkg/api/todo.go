package api

import "time"

// Todo represents one todo item on the wire.
// The same shape is used by the remote collection responses and by the
// client when it replays queued mutations.
type Todo struct {
	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
	Title     string    `json:"title"`
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	Completed bool      `json:"completed"`
}

// TodoPayload is the body of POST /todos and PUT /todos/{id}:
// a todo minus the identifier, which the server assigns (POST) or
// takes from the path (PUT).
type TodoPayload struct {
	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
	Title     string    `json:"title"`
	UserID    int       `json:"userId"`
	Completed bool      `json:"completed"`
}

// TodoPatch is the body of a partial PUT /todos/{id}. Nil fields are
// left untouched by the server.
type TodoPatch struct {
	Title     *string `json:"title,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
	UserID    *int    `json:"userId,omitempty"`
}

// ErrorResponse is the JSON error envelope returned on any non-2xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}
