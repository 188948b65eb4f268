package ledger

import (
	"context"
	"fmt"

	"cashbook/internal/storage"
)

// notesKey holds the free-text notes, kept separate from the transaction
// collection.
const notesKey = "cashbook_notes"

// Notes is a plain read/write pass-through to the backing store.
type Notes struct {
	kv storage.KV
}

func NewNotes(kv storage.KV) *Notes {
	return &Notes{kv: kv}
}

func (n *Notes) Load(ctx context.Context) (string, error) {
	raw, ok, err := n.kv.Get(ctx, notesKey)
	if err != nil {
		return "", fmt.Errorf("load notes: %w", err)
	}
	if !ok {
		return "", nil
	}
	return string(raw), nil
}

func (n *Notes) Save(ctx context.Context, text string) error {
	if err := n.kv.Put(ctx, notesKey, []byte(text)); err != nil {
		return fmt.Errorf("%w: save notes: %w", ErrPersistence, err)
	}
	return nil
}

func (n *Notes) Clear(ctx context.Context) error {
	if err := n.kv.Delete(ctx, notesKey); err != nil {
		return fmt.Errorf("%w: clear notes: %w", ErrPersistence, err)
	}
	return nil
}
