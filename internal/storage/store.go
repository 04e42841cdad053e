// Package storage provides the key-value byte stores the ledger persists
// into. Two tiers exist: a durable SQLite store and an in-process memory
// store used as the fallback when the primary is unavailable.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has no value.
var ErrNotFound = errors.New("key not found")

// Store is a single key-value byte store tier.
type Store interface {
	// Put writes the value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Get returns the value under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete removes the key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Name identifies the tier in logs and save results.
	Name() string

	Close() error
}
