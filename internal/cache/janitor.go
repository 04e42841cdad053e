package cache

import (
	"context"
	"log/slog"
	"time"
)

// Cleaner is any cache that can drop its expired entries.
type Cleaner interface {
	CleanExpired() int
}

// Janitor periodically sweeps expired entries out of registered caches.
type Janitor struct {
	caches   []Cleaner
	interval time.Duration
}

func NewJanitor(interval time.Duration) *Janitor {
	return &Janitor{interval: interval}
}

// Register adds a cache to the sweep. Not safe to call after Run starts.
func (j *Janitor) Register(caches ...Cleaner) {
	j.caches = append(j.caches, caches...)
}

// Run sweeps until the context is canceled. Always returns nil, so it can
// run directly under an errgroup.
func (j *Janitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			cleaned := 0
			for _, c := range j.caches {
				cleaned += c.CleanExpired()
			}
			if cleaned > 0 {
				slog.Debug("Cache sweep completed", "entries_removed", cleaned)
			}
		case <-ctx.Done():
			return nil
		}
	}
}
