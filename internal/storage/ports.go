package storage

import "context"

// KV is the durable key-value port the ledger persists through. The ledger
// owns one serialized value per key; the adapter only moves bytes.
type KV interface {
	// Get returns the value stored under key, and whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes the key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
