// Package service defines the backend-agnostic interfaces for todo and auth operations.
package service

import (
	"context"

	"golang.org/x/oauth2"
)

// Store defines the interface for todo record operations.
// All remote data API calls go through this interface.
// Commands never talk to the backend directly.
type Store interface {
	// ListTodos returns all todos owned by the current user,
	// ordered by creation time descending (newest first).
	ListTodos(ctx context.Context) ([]Todo, error)

	// CreateTodo creates a todo with the given title and optional
	// description (nil for none). The backend assigns id, owner and
	// timestamps. Returns the stored record.
	CreateTodo(ctx context.Context, title string, description *string) (Todo, error)

	// UpdateTodo applies a partial patch to the todo with the given id
	// and returns the stored record as the backend now sees it.
	UpdateTodo(ctx context.Context, id string, patch TodoPatch) (Todo, error)

	// DeleteTodo removes the todo with the given id. Irreversible.
	DeleteTodo(ctx context.Context, id string) error
}

// SessionData is the token envelope plus user identity returned by
// the auth provider on sign-in and refresh.
type SessionData struct {
	Token *oauth2.Token
	User  *User
}

// Auth defines the interface for auth provider operations.
// Every operation reports failure through its error value; none panics.
type Auth interface {
	// SignUp registers a new account. The provider sends a confirmation
	// e-mail pointing at redirectURL. No local state changes.
	SignUp(ctx context.Context, email, password, redirectURL string) error

	// SignIn exchanges credentials for a session.
	SignIn(ctx context.Context, email, password string) (SessionData, error)

	// SignOut terminates the session identified by the access token.
	SignOut(ctx context.Context, accessToken string) error

	// Refresh exchanges a refresh token for a fresh session.
	Refresh(ctx context.Context, refreshToken string) (SessionData, error)

	// ForgotPassword asks the provider to send a reset-link e-mail
	// pointing at redirectURL.
	ForgotPassword(ctx context.Context, email, redirectURL string) error

	// ResetPassword updates the password of the currently
	// authenticated session.
	ResetPassword(ctx context.Context, accessToken, newPassword string) error
}
