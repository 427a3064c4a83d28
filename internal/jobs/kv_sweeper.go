package jobs

import (
	"context"
	"log/slog"
	"time"
)

// ExpiredDeleter removes expired entries from a store.
type ExpiredDeleter interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

// KVSweeper periodically removes expired history snapshots.
type KVSweeper struct {
	store    ExpiredDeleter
	interval time.Duration
}

// NewKVSweeper creates a sweeper.
func NewKVSweeper(store ExpiredDeleter, interval time.Duration) *KVSweeper {
	return &KVSweeper{store: store, interval: interval}
}

// Start begins the sweep loop.
func (s *KVSweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep runs one cleanup pass.
func (s *KVSweeper) Sweep(ctx context.Context) {
	n, err := s.store.DeleteExpired(ctx)
	if err != nil {
		slog.Error("kv sweep failed", "error", err)
		return
	}
	if n > 0 {
		slog.Debug("kv sweep removed expired entries", "count", n)
	}
}
