// Package app wires the session holder, auth manager and todo manager
// into one explicitly constructed object with an init/teardown lifecycle
// tied to the invocation, not to package state.
package app

import (
	"context"

	"github.com/charmbracelet/log"

	"tdo/internal/auth"
	"tdo/internal/backend/supabase"
	"tdo/internal/config"
	"tdo/internal/notify"
	"tdo/internal/service"
	"tdo/internal/session"
	"tdo/internal/todos"
)

// App is the assembled client. One per invocation.
type App struct {
	Sessions *session.Holder
	Auth     *auth.Manager
	Todos    *todos.Manager
}

// New assembles an App from explicit collaborators. Used directly by
// tests with fake backends.
func New(cfg *config.Config, store service.Store, provider service.Auth, notifier notify.Notifier, logger *log.Logger) *App {
	holder := session.NewHolder()
	return &App{
		Sessions: holder,
		Auth:     auth.NewManager(provider, holder, cfg, logger),
		Todos:    todos.NewManager(store, holder, notifier),
	}
}

// Connect assembles an App backed by the configured hosted service. The
// backend client reads its bearer token from the session holder, so a
// sign-in mid-invocation is picked up by later data calls.
func Connect(cfg *config.Config, notifier notify.Notifier, logger *log.Logger) *App {
	holder := session.NewHolder()
	client := supabase.New(cfg.Service.URL, cfg.Service.AnonKey, func() string {
		if t := holder.Token(); t != nil {
			return t.AccessToken
		}
		return ""
	}, logger)

	return &App{
		Sessions: holder,
		Auth:     auth.NewManager(client, holder, cfg, logger),
		Todos:    todos.NewManager(client, holder, notifier),
	}
}

// Start begins watching for identity changes, then runs the one-shot
// session check. The watch subscription is registered before the check
// writes the holder, so the initial state is never missed. Returns once
// the session state is settled; the watcher stops when ctx ends.
func (a *App) Start(ctx context.Context) {
	a.Todos.WatchSession(ctx)
	a.Auth.Start(ctx)
}
