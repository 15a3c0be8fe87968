// Package todos is the data-synchronization layer between the UI and the
// remote store.
//
// Every mutation is followed by list invalidation rather than optimistic
// local patching: the displayed list always reflects server-confirmed
// state. The cost is one extra round trip per mutation.
package todos

import (
	"context"
	"fmt"
	"strings"

	"tdo/internal/cache"
	"tdo/internal/notify"
	"tdo/internal/service"
	"tdo/internal/session"
)

// ResourceTodos is the cache resource kind for the todo list.
const ResourceTodos = "todos"

// Manager exposes list/create/update/delete/toggle over the store, all
// scoped to the currently authenticated user.
type Manager struct {
	store    service.Store
	sessions *session.Holder
	cache    *cache.Cache[[]service.Todo]
	notifier notify.Notifier
}

// NewManager wires the data layer. The cache is owned by the manager and
// only the manager's mutation paths invalidate it.
func NewManager(store service.Store, sessions *session.Holder, notifier notify.Notifier) *Manager {
	if notifier == nil {
		notifier = notify.Discard{}
	}
	return &Manager{
		store:    store,
		sessions: sessions,
		cache:    cache.New[[]service.Todo](),
		notifier: notifier,
	}
}

// WatchSession drops all cached lists whenever the user identity changes,
// so a sign-out/sign-in never serves the previous user's snapshot.
// The subscription is registered before WatchSession returns, so no
// change published after the call can be missed; draining runs in the
// background until ctx ends.
func (m *Manager) WatchSession(ctx context.Context) {
	sub := m.sessions.Subscribe(ctx)
	go func() {
		for range sub {
			m.cache.Clear()
		}
	}()
}

func (m *Manager) listKey(userID string) cache.Key {
	return cache.Key{Resource: ResourceTodos, Owner: userID}
}

func (m *Manager) currentUser() (*service.User, error) {
	user := m.sessions.User()
	if user == nil {
		return nil, service.ErrAuthRequired
	}
	return user, nil
}

// List returns the current user's todos, newest first, from cache when
// fresh. A failed fetch is returned as a FetchError and is not retried.
func (m *Manager) List(ctx context.Context) ([]service.Todo, error) {
	user, err := m.currentUser()
	if err != nil {
		return nil, err
	}
	list, err := m.cache.GetOrFetch(ctx, m.listKey(user.ID), func(ctx context.Context) ([]service.Todo, error) {
		todos, err := m.store.ListTodos(ctx)
		if err != nil {
			return nil, &service.FetchError{Op: "list", Err: err}
		}
		return todos, nil
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

// Create stores a new todo. An empty or whitespace description is
// normalized to null, never to "".
func (m *Manager) Create(ctx context.Context, title, description string) (service.Todo, error) {
	user, err := m.currentUser()
	if err != nil {
		return service.Todo{}, err
	}

	var desc *string
	if d := strings.TrimSpace(description); d != "" {
		desc = &d
	}

	created, err := m.store.CreateTodo(ctx, title, desc)
	if err != nil {
		ferr := &service.FetchError{Op: "create", Err: err}
		m.notifier.Error(fmt.Sprintf("Failed to create todo: %v", err))
		return service.Todo{}, ferr
	}

	m.cache.Invalidate(m.listKey(user.ID))
	m.notifier.Success("Todo created successfully")
	return created, nil
}

// Update applies a partial patch to one todo. An empty patch is
// rejected before any network call.
func (m *Manager) Update(ctx context.Context, id string, patch service.TodoPatch) (service.Todo, error) {
	user, err := m.currentUser()
	if err != nil {
		return service.Todo{}, err
	}
	if patch.IsEmpty() {
		return service.Todo{}, fmt.Errorf("update todo %s: empty patch", id)
	}

	updated, err := m.store.UpdateTodo(ctx, id, patch)
	if err != nil {
		ferr := &service.FetchError{Op: "update", Err: err}
		m.notifier.Error(fmt.Sprintf("Failed to update todo: %v", err))
		return service.Todo{}, ferr
	}

	m.cache.Invalidate(m.listKey(user.ID))
	m.notifier.Success("Todo updated successfully")
	return updated, nil
}

// Delete removes one todo. Irreversible, no confirmation here.
func (m *Manager) Delete(ctx context.Context, id string) error {
	user, err := m.currentUser()
	if err != nil {
		return err
	}

	if err := m.store.DeleteTodo(ctx, id); err != nil {
		ferr := &service.FetchError{Op: "delete", Err: err}
		m.notifier.Error(fmt.Sprintf("Failed to delete todo: %v", err))
		return ferr
	}

	m.cache.Invalidate(m.listKey(user.ID))
	m.notifier.Success("Todo deleted successfully")
	return nil
}

// SetCompleted flips the completion flag only. Success is silent; the
// action is too frequent for a toast per toggle.
func (m *Manager) SetCompleted(ctx context.Context, id string, completed bool) (service.Todo, error) {
	user, err := m.currentUser()
	if err != nil {
		return service.Todo{}, err
	}

	updated, err := m.store.UpdateTodo(ctx, id, service.TodoPatch{Completed: &completed})
	if err != nil {
		ferr := &service.FetchError{Op: "update", Err: err}
		m.notifier.Error(fmt.Sprintf("Failed to update todo: %v", err))
		return service.Todo{}, ferr
	}

	m.cache.Invalidate(m.listKey(user.ID))
	return updated, nil
}

// CompletedCount returns how many of the given todos are done. Derived
// display arithmetic, never persisted.
func CompletedCount(list []service.Todo) int {
	n := 0
	for _, t := range list {
		if t.Completed {
			n++
		}
	}
	return n
}
