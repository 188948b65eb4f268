// Package ledger owns the transaction collection. The store is the only
// component that mutates records; everything else consumes List output.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cashbook/internal/core"
	"cashbook/internal/storage"
)

// transactionsKey is the single backing-store key holding the serialized
// collection. The name predates this implementation and is kept so existing
// ledgers load unchanged.
const transactionsKey = "cashbook_transactions"

var (
	ErrNotFound = errors.New("transaction not found")

	// ErrPersistence wraps backing-store write failures. The in-memory
	// collection stays authoritative for the session; the caller decides
	// how to surface the failure.
	ErrPersistence = errors.New("persistence failure")
)

// Fields carries the validated user input for a create or update. Amount is
// the positive magnitude; the sign is derived from Type.
type Fields struct {
	Description string
	Amount      decimal.Decimal
	Type        core.TransactionType
	Date        core.Date
	Time        string
}

func (f Fields) validate() error {
	if len(strings.TrimSpace(f.Description)) == 0 {
		return core.ErrEmptyDescription
	}
	if !f.Amount.IsPositive() {
		return core.ErrInvalidAmount
	}
	if err := f.Type.Validate(); err != nil {
		return err
	}
	if err := f.Date.Validate(); err != nil {
		return err
	}
	return nil
}

// Store keeps the collection in insertion order and serializes the whole
// of it to the KV port on every mutation.
type Store struct {
	mu           sync.Mutex
	kv           storage.KV
	transactions []core.Transaction
	newID        func() string
}

func NewStore(kv storage.KV) *Store {
	return &Store{kv: kv, newID: uuid.NewString}
}

// Load reads the persisted collection. Records created before the time
// field existed are backfilled with "00:00", once, here — not on reads.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.kv.Get(ctx, transactionsKey)
	if err != nil {
		return fmt.Errorf("load transactions: %w", err)
	}
	if !ok {
		s.transactions = nil
		return nil
	}

	var txs []core.Transaction
	if err := json.Unmarshal(raw, &txs); err != nil {
		return fmt.Errorf("decode transactions: %w", err)
	}

	backfilled := 0
	for i := range txs {
		if txs[i].Time == "" {
			txs[i].Time = core.DefaultTime
			backfilled++
		}
	}
	if backfilled > 0 {
		slog.InfoContext(ctx, "Backfilled missing time on legacy records", "count", backfilled)
	}

	s.transactions = txs
	return nil
}

// Create validates fields, assigns a fresh id and appends the record.
// The record is returned even when persistence fails; the error then
// wraps ErrPersistence.
func (s *Store) Create(ctx context.Context, f Fields) (core.Transaction, error) {
	if err := f.validate(); err != nil {
		return core.Transaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := s.fromFields(s.newID(), f)
	s.transactions = append(s.transactions, tx)

	err := s.persist(ctx)
	if err == nil {
		slog.InfoContext(ctx, "Transaction created",
			"id", tx.ID,
			"description", tx.Description,
			"amount", tx.Amount.String(),
			"date", tx.Date.Format("2006-01-02"))
	}
	return tx, err
}

// Update replaces the record matching id in place, preserving the id.
func (s *Store) Update(ctx context.Context, id string, f Fields) (core.Transaction, error) {
	if err := f.validate(); err != nil {
		return core.Transaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return core.Transaction{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	tx := s.fromFields(id, f)
	s.transactions[i] = tx
	return tx, s.persist(ctx)
}

// Delete removes the record with matching id. A second delete of the same
// id reports ErrNotFound and changes nothing.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
	return s.persist(ctx)
}

// Clear atomically empties the collection.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transactions = nil
	return s.persist(ctx)
}

// List returns the collection in insertion order. Callers sort as needed.
func (s *Store) List() []core.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]core.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

func (s *Store) fromFields(id string, f Fields) core.Transaction {
	t := f.Time
	if t == "" {
		t = core.DefaultTime
	}
	return core.Transaction{
		ID:          id,
		Description: strings.TrimSpace(f.Description),
		Amount:      core.SignedAmount(f.Amount, f.Type),
		Type:        f.Type,
		Date:        f.Date,
		Time:        t,
	}
}

func (s *Store) indexOf(id string) int {
	for i, t := range s.transactions {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// persist serializes the full collection before the mutating call returns.
func (s *Store) persist(ctx context.Context) error {
	txs := s.transactions
	if txs == nil {
		txs = []core.Transaction{} // an empty ledger persists as [], not null
	}
	raw, err := json.Marshal(txs)
	if err != nil {
		return fmt.Errorf("%w: encode transactions: %w", ErrPersistence, err)
	}
	if err := s.kv.Put(ctx, transactionsKey, raw); err != nil {
		return fmt.Errorf("%w: save transactions: %w", ErrPersistence, err)
	}
	return nil
}
