package agent

import (
	"context"
	"testing"

	"github.com/scouterlab/talentscout/dialogue"
)

func TestSessionStoreLoadCreatesAndStarts(t *testing.T) {
	store := NewMemorySessionStore(func(ctx context.Context) *Interview {
		return NewInterview(nil)
	})
	ctx := WithSessionKey(context.Background(), "alpha")

	iv, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if iv.CurrentMessage() != dialogue.Greeting() {
		t.Errorf("new interview not started: %q", iv.CurrentMessage())
	}

	again, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if again.ID() != iv.ID() {
		t.Error("second Load created a new interview")
	}
}

func TestSessionStoreIsolatesKeys(t *testing.T) {
	store := NewMemorySessionStore(func(ctx context.Context) *Interview {
		return NewInterview(nil)
	})
	a, err := store.Load(WithSessionKey(context.Background(), "a"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	b, err := store.Load(WithSessionKey(context.Background(), "b"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if a.ID() == b.ID() {
		t.Error("different keys shared one interview")
	}
}

func TestSessionStoreRemove(t *testing.T) {
	store := NewMemorySessionStore(func(ctx context.Context) *Interview {
		return NewInterview(nil)
	})
	ctx := WithSessionKey(context.Background(), "alpha")
	first, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := store.Remove(ctx); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	second, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if second.ID() == first.ID() {
		t.Error("Remove did not discard the interview")
	}
}

func TestSessionKeyDefault(t *testing.T) {
	key, ok := sessionKeyOrDefault(context.Background())
	if !ok || key != defaultSessionKey {
		t.Errorf("sessionKeyOrDefault = (%q, %v)", key, ok)
	}
	key, ok = sessionKeyOrDefault(WithSessionKey(context.Background(), "custom"))
	if !ok || key != "custom" {
		t.Errorf("sessionKeyOrDefault = (%q, %v)", key, ok)
	}
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache[int]()

	if err := cache.Set(ctx, "k", 42); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok, err := cache.Get(ctx, "k")
	if err != nil || !ok || v != 42 {
		t.Errorf("Get = (%d, %v, %v)", v, ok, err)
	}
	exists, err := cache.Exists(ctx, "k")
	if err != nil || !exists {
		t.Errorf("Exists = (%v, %v)", exists, err)
	}
	if err := cache.Del(ctx, "k"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	if _, ok, _ := cache.Get(ctx, "k"); ok {
		t.Error("value survived Del")
	}
}
