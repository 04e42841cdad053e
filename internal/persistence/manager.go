// Package persistence serializes the ledger to a two-tier key-value store.
// Failures never propagate as errors to the caller: saves report which tier
// took the write (or that both refused it), loads degrade to nil. The
// ledger keeps functioning in memory even when storage is unavailable.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"uniwallet/internal/core"
	"uniwallet/internal/storage"
)

// DefaultKey is the logical key the ledger lives under.
const DefaultKey = "uniwalletpro_data"

// SaveResult reports the outcome of a save: which tier succeeded, or why
// both tiers refused the write.
type SaveResult struct {
	OK      bool   `json:"ok"`
	Storage string `json:"storage,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Manager owns the logical key and the primary/fallback store pair.
type Manager struct {
	key      string
	primary  storage.Store
	fallback storage.Store
}

func NewManager(key string, primary, fallback storage.Store) *Manager {
	if key == "" {
		key = DefaultKey
	}
	return &Manager{key: key, primary: primary, fallback: fallback}
}

// Key returns the logical storage key.
func (m *Manager) Key() string { return m.key }

// Save serializes the snapshot and writes it to the primary store, falling
// back to the fallback store on failure. It never returns an error.
func (m *Manager) Save(ctx context.Context, snap core.Snapshot) SaveResult {
	data, err := json.Marshal(snap)
	if err != nil {
		// Snapshot contains only plain JSON-encodable fields, so this is
		// effectively unreachable, but the contract is "never fail loudly".
		slog.ErrorContext(ctx, "Snapshot encode failed", "error", err)
		return SaveResult{Error: "EncodeError"}
	}

	if err := m.primary.Put(ctx, m.key, data); err == nil {
		return SaveResult{OK: true, Storage: m.primary.Name()}
	} else {
		slog.WarnContext(ctx, "Primary store write failed, trying fallback",
			"store", m.primary.Name(), "key", m.key, "error", err)
	}

	err = m.fallback.Put(ctx, m.key, data)
	if err == nil {
		return SaveResult{OK: true, Storage: m.fallback.Name()}
	}
	slog.ErrorContext(ctx, "Fallback store write failed",
		"store", m.fallback.Name(), "key", m.key, "error", err)
	return SaveResult{Error: failureName(err)}
}

// Load reads the primary store first and falls back when the primary has no
// value. Missing or corrupted data yields nil, never an error.
func (m *Manager) Load(ctx context.Context) *core.RawSnapshot {
	raw, err := m.primary.Get(ctx, m.key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			slog.WarnContext(ctx, "Primary store read failed",
				"store", m.primary.Name(), "key", m.key, "error", err)
		}
		raw, err = m.fallback.Get(ctx, m.key)
	}
	if err != nil {
		return nil
	}

	var snap core.RawSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		// Corrupted persisted data is treated as absent data.
		slog.WarnContext(ctx, "Stored ledger is corrupted, ignoring",
			"key", m.key, "error", err)
		return nil
	}
	return &snap
}

// Clear removes the key from both tiers. Clearing an absent key is fine.
func (m *Manager) Clear(ctx context.Context) error {
	var errs []error
	if err := m.primary.Delete(ctx, m.key); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", m.primary.Name(), err))
	}
	if err := m.fallback.Delete(ctx, m.key); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", m.fallback.Name(), err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("clear %q: %v", m.key, errs)
	}
	return nil
}

// failureName maps a store error to the short name reported in SaveResult.
func failureName(err error) string {
	if err == nil {
		return "PersistError"
	}
	return err.Error()
}
