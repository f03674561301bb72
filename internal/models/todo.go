package models

import "time"

// Todo represents one task in the local store.
//
// ID is assigned locally for offline-created todos and stays canonical for
// the lifetime of the record: a successful sync merges server fields in but
// never replaces the local id, so queued operations always resolve their
// target. Synced reports whether the remote copy reflects this local state.
// Deleted is a soft-delete tombstone, kept until the delete is confirmed
// remotely and excluded from every user-facing view.
type Todo struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Title     string    `json:"title"`
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	Completed bool      `json:"completed"`
	Synced    bool      `json:"isSynced"`
	Deleted   bool      `json:"isDeleted"`
}

// Clone creates a copy of the todo
func (t *Todo) Clone() *Todo {
	clone := *t
	return &clone
}

// TodoPatch describes a partial update to a stored todo.
// Nil fields are left untouched.
type TodoPatch struct {
	Title     *string
	Completed *bool
	UserID    *int
	Synced    *bool
	Deleted   *bool
	UpdatedAt *time.Time
}

// Apply merges the patch into the todo. UpdatedAt is monotonically
// non-decreasing: an older patch timestamp never rewinds the record.
func (p *TodoPatch) Apply(t *Todo) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.UserID != nil {
		t.UserID = *p.UserID
	}
	if p.Synced != nil {
		t.Synced = *p.Synced
	}
	if p.Deleted != nil {
		t.Deleted = *p.Deleted
	}
	if p.UpdatedAt != nil && p.UpdatedAt.After(t.UpdatedAt) {
		t.UpdatedAt = *p.UpdatedAt
	}
}
