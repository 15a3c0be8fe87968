package session_test

import (
	"context"
	"testing"
	"time"

	"golang.org/x/oauth2"

	"tdo/internal/service"
	"tdo/internal/session"
)

func TestHolder_InitialState(t *testing.T) {
	h := session.NewHolder()

	if !h.Loading() {
		t.Error("expected loading=true before first check")
	}
	if h.User() != nil {
		t.Error("expected nil user initially")
	}
	if h.Token() != nil {
		t.Error("expected nil token initially")
	}
}

func TestHolder_SetClearsLoadingOnce(t *testing.T) {
	h := session.NewHolder()

	h.Set(nil, nil)
	if h.Loading() {
		t.Error("expected loading=false after first Set")
	}

	// Loading never transitions back to true within a process.
	h.Set(&oauth2.Token{AccessToken: "t"}, &service.User{ID: "u1"})
	if h.Loading() {
		t.Error("expected loading to stay false")
	}
	if h.User() == nil || h.User().ID != "u1" {
		t.Errorf("expected user u1, got %+v", h.User())
	}
}

func TestHolder_SubscribeReceivesChanges(t *testing.T) {
	h := session.NewHolder()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := h.Subscribe(ctx)
	h.Set(&oauth2.Token{AccessToken: "t"}, &service.User{ID: "u1", Email: "u@example.com"})

	select {
	case change := <-ch:
		if change.User == nil || change.User.ID != "u1" {
			t.Errorf("unexpected change payload: %+v", change)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for change")
	}

	// Sign-out is observed as a nil user.
	h.Set(nil, nil)
	select {
	case change := <-ch:
		if change.User != nil {
			t.Errorf("expected nil user on sign-out, got %+v", change.User)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for sign-out change")
	}
}

func TestHolder_SubscribeClosesOnContextEnd(t *testing.T) {
	h := session.NewHolder()
	ctx, cancel := context.WithCancel(context.Background())

	ch := h.Subscribe(ctx)
	cancel()

	select {
	case _, ok := <-ch:
		if ok {
			t.Error("expected closed channel after cancel")
		}
	case <-time.After(time.Second):
		t.Fatal("channel not closed after cancel")
	}

	// Writes after detach must not block or panic.
	h.Set(nil, nil)
}
