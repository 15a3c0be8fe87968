// Package service defines the backend-agnostic interfaces for todo and auth operations.
package service

import "time"

// Todo represents a single todo record as stored by the backend.
// Description is nullable: an absent description is null, never "".
type Todo struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// User is the authenticated identity as reported by the auth provider.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// TodoPatch describes a partial update. Nil fields are left untouched.
// A non-nil Description pointing at an empty string is stored as null.
type TodoPatch struct {
	Title       *string
	Description *string
	Completed   *bool
}

// IsEmpty reports whether the patch carries no changes.
func (p TodoPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Completed == nil
}
