package memory

import (
	"context"
	"testing"

	"termtrivia/internal/domain"
)

func TestStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	results, err := store.Load(ctx)
	if err != nil || len(results) != 0 {
		t.Fatalf("expected empty store, got %d entries err=%v", len(results), err)
	}

	if err := store.Append(ctx, domain.SessionResult{User: "alice", Total: 5, Percentage: 60}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := store.Append(ctx, domain.SessionResult{User: "bob", Total: 5, Percentage: 80}); err != nil {
		t.Fatalf("append: %v", err)
	}

	results, _ = store.Load(ctx)
	if len(results) != 2 || results[1].User != "bob" {
		t.Fatalf("expected bob appended last, got %+v", results)
	}

	top, err := store.TopN(ctx, 1)
	if err != nil {
		t.Fatalf("topN: %v", err)
	}
	if len(top) != 1 || top[0].User != "bob" {
		t.Fatalf("expected bob on top, got %+v", top)
	}
}
