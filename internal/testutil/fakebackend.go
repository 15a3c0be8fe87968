// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"tdo/internal/service"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// FakeStore is an in-memory implementation of service.Store for testing.
type FakeStore struct {
	mu    sync.RWMutex
	todos map[string]service.Todo
	clock time.Time

	// Call counters for asserting on issued requests.
	ListCalls   int
	CreateCalls int
	UpdateCalls int
	DeleteCalls int

	// Error injection
	ListErr   error
	CreateErr error
	UpdateErr error
	DeleteErr error

	// UserID stamped onto created rows.
	UserID string
}

// NewFakeStore creates an empty FakeStore owned by the given user.
func NewFakeStore(userID string) *FakeStore {
	return &FakeStore{
		todos:  make(map[string]service.Todo),
		clock:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		UserID: userID,
	}
}

// tick advances the fake clock so created_at ordering is deterministic.
func (f *FakeStore) tick() time.Time {
	f.clock = f.clock.Add(time.Second)
	return f.clock
}

// Seed inserts a todo directly, bypassing counters and errors.
func (f *FakeStore) Seed(title string, description *string, completed bool) service.Todo {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := f.tick()
	todo := service.Todo{
		ID:          uuid.NewString(),
		UserID:      f.UserID,
		Title:       title,
		Description: description,
		Completed:   completed,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	f.todos[todo.ID] = todo
	return todo
}

// Get returns the stored row by id.
func (f *FakeStore) Get(id string) (service.Todo, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	t, ok := f.todos[id]
	return t, ok
}

// Len returns the number of stored rows.
func (f *FakeStore) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.todos)
}

// ListTodos implements service.Store.
func (f *FakeStore) ListTodos(ctx context.Context) ([]service.Todo, error) {
	f.mu.Lock()
	f.ListCalls++
	f.mu.Unlock()
	if f.ListErr != nil {
		return nil, f.ListErr
	}

	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]service.Todo, 0, len(f.todos))
	for _, t := range f.todos {
		result = append(result, t)
	}
	// Newest first, as the real backend orders.
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// CreateTodo implements service.Store.
func (f *FakeStore) CreateTodo(ctx context.Context, title string, description *string) (service.Todo, error) {
	f.mu.Lock()
	f.CreateCalls++
	f.mu.Unlock()
	if f.CreateErr != nil {
		return service.Todo{}, f.CreateErr
	}
	return f.Seed(title, description, false), nil
}

// UpdateTodo implements service.Store.
func (f *FakeStore) UpdateTodo(ctx context.Context, id string, patch service.TodoPatch) (service.Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.UpdateCalls++
	if f.UpdateErr != nil {
		return service.Todo{}, f.UpdateErr
	}

	t, ok := f.todos[id]
	if !ok {
		return service.Todo{}, ErrNotFound
	}
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		if *patch.Description == "" {
			t.Description = nil
		} else {
			d := *patch.Description
			t.Description = &d
		}
	}
	if patch.Completed != nil {
		t.Completed = *patch.Completed
	}
	t.UpdatedAt = f.tick()
	f.todos[id] = t
	return t, nil
}

// DeleteTodo implements service.Store.
func (f *FakeStore) DeleteTodo(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.DeleteCalls++
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	if _, ok := f.todos[id]; !ok {
		return ErrNotFound
	}
	delete(f.todos, id)
	return nil
}

// FakeAuth is an in-memory implementation of service.Auth for testing.
type FakeAuth struct {
	mu    sync.Mutex
	users map[string]string // email -> password

	SignUpCalls int
	SignInCalls int

	// Error injection
	SignUpErr  error
	SignInErr  error
	SignOutErr error
	RefreshErr error
	ForgotErr  error
	ResetErr   error

	// Recorded inputs
	LastRedirectURL string
	LastNewPassword string
	SignedOutTokens []string
}

// NewFakeAuth creates a FakeAuth with no registered users.
func NewFakeAuth() *FakeAuth {
	return &FakeAuth{users: make(map[string]string)}
}

// AddUser registers an account directly.
func (f *FakeAuth) AddUser(email, password string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[email] = password
}

func sessionFor(email string) service.SessionData {
	return service.SessionData{
		Token: &oauth2.Token{
			AccessToken:  "access-" + email,
			RefreshToken: "refresh-" + email,
			TokenType:    "bearer",
			Expiry:       time.Now().Add(time.Hour),
		},
		User: &service.User{ID: uuid.NewString(), Email: email},
	}
}

// SignUp implements service.Auth.
func (f *FakeAuth) SignUp(ctx context.Context, email, password, redirectURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SignUpCalls++
	f.LastRedirectURL = redirectURL
	if f.SignUpErr != nil {
		return f.SignUpErr
	}
	if _, ok := f.users[email]; ok {
		return errors.New("User already registered")
	}
	f.users[email] = password
	return nil
}

// SignIn implements service.Auth.
func (f *FakeAuth) SignIn(ctx context.Context, email, password string) (service.SessionData, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SignInCalls++
	if f.SignInErr != nil {
		return service.SessionData{}, f.SignInErr
	}
	if pw, ok := f.users[email]; !ok || pw != password {
		return service.SessionData{}, errors.New("Invalid login credentials")
	}
	return sessionFor(email), nil
}

// SignOut implements service.Auth.
func (f *FakeAuth) SignOut(ctx context.Context, accessToken string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SignedOutTokens = append(f.SignedOutTokens, accessToken)
	return f.SignOutErr
}

// Refresh implements service.Auth.
func (f *FakeAuth) Refresh(ctx context.Context, refreshToken string) (service.SessionData, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.RefreshErr != nil {
		return service.SessionData{}, f.RefreshErr
	}
	return sessionFor("refreshed@example.com"), nil
}

// ForgotPassword implements service.Auth.
func (f *FakeAuth) ForgotPassword(ctx context.Context, email, redirectURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastRedirectURL = redirectURL
	return f.ForgotErr
}

// ResetPassword implements service.Auth.
func (f *FakeAuth) ResetPassword(ctx context.Context, accessToken, newPassword string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastNewPassword = newPassword
	return f.ResetErr
}

// RecordingNotifier captures notifications for assertions.
type RecordingNotifier struct {
	mu        sync.Mutex
	Successes []string
	Errors    []string
}

func (r *RecordingNotifier) Success(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Successes = append(r.Successes, msg)
}

func (r *RecordingNotifier) Error(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Errors = append(r.Errors, msg)
}
