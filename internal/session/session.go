// Package session holds the live authenticated identity for one process.
//
// The Holder has exactly one writer, the auth manager; everything else
// only reads. It carries no persistence of its own: on restart the
// provider (via the persisted session file) is the source of truth.
package session

import (
	"context"
	"sync"

	"golang.org/x/oauth2"

	"tdo/internal/service"
)

// Change is published to subscribers whenever the session state is
// rewritten (sign-in, sign-out, refresh, initial check).
type Change struct {
	User  *service.User
	Token *oauth2.Token
}

const subscriberBuffer = 8

// Holder is the process-wide session state. Construct with NewHolder and
// inject it; there is no package-level instance.
type Holder struct {
	mu      sync.RWMutex
	user    *service.User
	token   *oauth2.Token
	loading bool

	subs map[chan Change]struct{}
}

// NewHolder returns a Holder in its initial state: no user, loading.
func NewHolder() *Holder {
	return &Holder{
		loading: true,
		subs:    make(map[chan Change]struct{}),
	}
}

// User returns the current identity, nil when signed out.
func (h *Holder) User() *service.User {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.user
}

// Token returns the current token envelope, nil when signed out.
func (h *Holder) Token() *oauth2.Token {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Loading reports whether the first session check is still outstanding.
func (h *Holder) Loading() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.loading
}

// Set atomically rewrites token and user, clears the loading flag and
// notifies subscribers. Only the auth manager may call it.
func (h *Holder) Set(token *oauth2.Token, user *service.User) {
	h.mu.Lock()
	h.token = token
	h.user = user
	h.loading = false
	change := Change{User: user, Token: token}
	for sub := range h.subs {
		select {
		case sub <- change:
		default:
			// Subscriber is slow; dropping beats blocking the writer.
		}
	}
	h.mu.Unlock()
}

// Subscribe returns a channel of session changes. The channel closes
// when ctx ends; no dangling callbacks survive the subscriber.
func (h *Holder) Subscribe(ctx context.Context) <-chan Change {
	sub := make(chan Change, subscriberBuffer)

	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()

	go func() {
		<-ctx.Done()
		h.mu.Lock()
		delete(h.subs, sub)
		close(sub)
		h.mu.Unlock()
	}()

	return sub
}
