// Package auth keeps the session holder in sync with the auth provider
// and exposes the account operations.
//
// Every operation reports failure through its returned error value so the
// calling UI can choose how to present it; nothing here panics or prints.
package auth

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"

	"tdo/internal/config"
	"tdo/internal/logging"
	"tdo/internal/service"
	"tdo/internal/session"
)

// Manager is the single writer of the session holder.
type Manager struct {
	provider service.Auth
	sessions *session.Holder
	store    *FileStore
	cfg      *config.Config
	log      *log.Logger
}

// NewManager wires the auth layer. The config supplies the session
// persistence path and the base for the redirect addresses embedded in
// provider e-mails.
func NewManager(provider service.Auth, sessions *session.Holder, cfg *config.Config, logger *log.Logger) *Manager {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Manager{
		provider: provider,
		sessions: sessions,
		store:    NewFileStore(cfg.SessionPath()),
		cfg:      cfg,
		log:      logger,
	}
}

// Start performs the one-shot session check: restore the persisted
// session, refresh it when expired, and settle the holder either way.
// After Start returns, Loading() is false and consumers registered via
// the holder's Subscribe have seen the initial state.
func (m *Manager) Start(ctx context.Context) {
	data, err := m.store.Load()
	if err != nil {
		m.log.Debug("session restore failed", "err", err)
		m.sessions.Set(nil, nil)
		return
	}
	if data == nil {
		m.sessions.Set(nil, nil)
		return
	}

	if tokenExpired(data.Token) {
		m.log.Debug("stored session expired, refreshing")
		refreshed, err := m.provider.Refresh(ctx, data.Token.RefreshToken)
		if err != nil {
			// Stale refresh token; treat as signed out rather than
			// failing the whole invocation.
			m.log.Debug("refresh failed", "err", err)
			m.store.Remove()
			m.sessions.Set(nil, nil)
			return
		}
		data = &refreshed
		if err := m.store.Save(*data); err != nil {
			m.log.Debug("session persist failed", "err", err)
		}
	}

	m.sessions.Set(data.Token, data.User)
}

// SignUp registers a new account. Local state is untouched: the account
// needs e-mail confirmation (or an explicit sign-in) before a session
// exists.
func (m *Manager) SignUp(ctx context.Context, email, password string) error {
	return m.provider.SignUp(ctx, email, password, m.cfg.RedirectURL("/"))
}

// SignIn exchanges credentials for a session, updates the holder and
// persists the envelope.
func (m *Manager) SignIn(ctx context.Context, email, password string) error {
	data, err := m.provider.SignIn(ctx, email, password)
	if err != nil {
		return err
	}
	if err := m.store.Save(data); err != nil {
		m.log.Debug("session persist failed", "err", err)
	}
	m.sessions.Set(data.Token, data.User)
	return nil
}

// SignOut terminates the remote session. Local state is cleared only on
// success, mirroring the remote store as source of truth.
func (m *Manager) SignOut(ctx context.Context) error {
	token := m.sessions.Token()
	if token == nil {
		return nil
	}
	if err := m.provider.SignOut(ctx, token.AccessToken); err != nil {
		return err
	}
	m.store.Remove()
	m.sessions.Set(nil, nil)
	return nil
}

// ForgotPassword asks the provider to e-mail a reset link.
func (m *Manager) ForgotPassword(ctx context.Context, email string) error {
	return m.provider.ForgotPassword(ctx, email, m.cfg.RedirectURL("/reset-password"))
}

// ResetPassword updates the password of the live session.
func (m *Manager) ResetPassword(ctx context.Context, newPassword string) error {
	token := m.sessions.Token()
	if token == nil {
		return service.ErrAuthRequired
	}
	return m.provider.ResetPassword(ctx, token.AccessToken, newPassword)
}

// tokenExpired reports whether the access token is past (or missing) its
// expiry. The envelope's own Expiry wins; otherwise the exp claim of the
// JWT is consulted without signature verification, which is the server's
// job.
func tokenExpired(token *oauth2.Token) bool {
	if token == nil || token.AccessToken == "" {
		return true
	}
	if !token.Expiry.IsZero() {
		return !token.Valid()
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token.AccessToken, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		// No expiry claim: let the backend decide.
		return false
	}
	return exp.Time.Before(nowFunc())
}
