package storage

import (
	"context"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()
	key := Key("fix: something")

	if _, ok, err := store.Get(ctx, key); err != nil || ok {
		t.Fatalf("Get on empty store: ok=%v err=%v", ok, err)
	}

	fields := map[string]string{"header": "fix: something", "type": "fix"}
	if err := store.Set(ctx, key, fields); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, ok, err := store.Get(ctx, key)
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if got["type"] != "fix" {
		t.Fatalf("type = %q, want %q", got["type"], "fix")
	}

	// Mutating the returned map must not leak into the cache.
	got["type"] = "mutated"
	again, _, _ := store.Get(ctx, key)
	if again["type"] != "fix" {
		t.Fatalf("cache entry mutated through returned map: %#v", again)
	}

	if err := store.Delete(ctx, key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := store.Get(ctx, key); ok {
		t.Fatal("entry still present after Delete")
	}
}

func TestKeyIsStable(t *testing.T) {
	t.Parallel()

	if Key("fix: a") != Key("fix: a") {
		t.Fatal("same message must derive the same key")
	}
	if Key("fix: a") == Key("fix: b") {
		t.Fatal("different messages must derive different keys")
	}
}
