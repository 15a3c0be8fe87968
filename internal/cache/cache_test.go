package cache_test

import (
	"context"
	"errors"
	"testing"

	"tdo/internal/cache"
)

var todosKey = cache.Key{Resource: "todos", Owner: "u1"}

func TestGetOrFetch_CachesValue(t *testing.T) {
	c := cache.New[[]string]()
	calls := 0
	fetch := func(context.Context) ([]string, error) {
		calls++
		return []string{"a"}, nil
	}

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		got, err := c.GetOrFetch(ctx, todosKey, fetch)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0] != "a" {
			t.Errorf("unexpected value: %v", got)
		}
	}
	if calls != 1 {
		t.Errorf("expected 1 fetch, got %d", calls)
	}
}

func TestGetOrFetch_ErrorNotCached(t *testing.T) {
	c := cache.New[int]()
	calls := 0
	boom := errors.New("boom")
	fetch := func(context.Context) (int, error) {
		calls++
		if calls == 1 {
			return 0, boom
		}
		return 42, nil
	}

	ctx := context.Background()
	if _, err := c.GetOrFetch(ctx, todosKey, fetch); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	got, err := c.GetOrFetch(ctx, todosKey, fetch)
	if err != nil || got != 42 {
		t.Errorf("expected refetch after error, got %d, %v", got, err)
	}
}

func TestInvalidate_ForcesRefetch(t *testing.T) {
	c := cache.New[int]()
	calls := 0
	fetch := func(context.Context) (int, error) {
		calls++
		return calls, nil
	}

	ctx := context.Background()
	if v, _ := c.GetOrFetch(ctx, todosKey, fetch); v != 1 {
		t.Fatalf("expected 1, got %d", v)
	}
	c.Invalidate(todosKey)
	if v, _ := c.GetOrFetch(ctx, todosKey, fetch); v != 2 {
		t.Errorf("expected refetched value 2, got %d", v)
	}
}

func TestKeys_AreIndependent(t *testing.T) {
	c := cache.New[string]()
	ctx := context.Background()

	a := cache.Key{Resource: "todos", Owner: "alice"}
	b := cache.Key{Resource: "todos", Owner: "bob"}

	c.GetOrFetch(ctx, a, func(context.Context) (string, error) { return "A", nil })
	c.GetOrFetch(ctx, b, func(context.Context) (string, error) { return "B", nil })

	c.Invalidate(a)

	if _, ok := c.Peek(a); ok {
		t.Error("expected a invalidated")
	}
	if v, ok := c.Peek(b); !ok || v != "B" {
		t.Error("expected b untouched")
	}
}

func TestClear(t *testing.T) {
	c := cache.New[string]()
	ctx := context.Background()
	c.GetOrFetch(ctx, todosKey, func(context.Context) (string, error) { return "x", nil })

	c.Clear()
	if _, ok := c.Peek(todosKey); ok {
		t.Error("expected empty cache after Clear")
	}
}
