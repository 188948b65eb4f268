package ledger

import (
	"context"
	"testing"

	"cashbook/internal/storage"
)

func TestNotesRoundTrip(t *testing.T) {
	kv := storage.NewMemoryStore()
	n := NewNotes(kv)
	ctx := context.Background()

	text, err := n.Load(ctx)
	if err != nil || text != "" {
		t.Fatalf("fresh notes = %q err=%v, want empty", text, err)
	}

	if err := n.Save(ctx, "remember the rent"); err != nil {
		t.Fatalf("save: %v", err)
	}
	text, err = n.Load(ctx)
	if err != nil || text != "remember the rent" {
		t.Fatalf("load = %q err=%v", text, err)
	}

	if err := n.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	text, _ = n.Load(ctx)
	if text != "" {
		t.Fatalf("notes survived clear: %q", text)
	}
}
