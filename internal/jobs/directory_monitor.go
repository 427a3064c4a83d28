package jobs

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

// Pinger checks an upstream dependency.
type Pinger interface {
	Ping(ctx context.Context) error
}

// DirectoryMonitor periodically probes the brewery directory and keeps
// the last known availability.
type DirectoryMonitor struct {
	pinger   Pinger
	interval time.Duration
	timeout  time.Duration
	report   func(up bool)
	up       atomic.Bool
	checked  atomic.Bool
}

// NewDirectoryMonitor creates a monitor. report is called after every probe
// and may be nil.
func NewDirectoryMonitor(pinger Pinger, interval time.Duration, report func(up bool)) *DirectoryMonitor {
	if report == nil {
		report = func(bool) {}
	}
	return &DirectoryMonitor{
		pinger:   pinger,
		interval: interval,
		timeout:  10 * time.Second,
		report:   report,
	}
}

// Start begins the background probe loop.
func (m *DirectoryMonitor) Start(ctx context.Context) {
	slog.Info("directory monitor started", "interval", m.interval)

	// Run immediately on start
	m.Check(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("directory monitor stopped")
			return
		case <-ticker.C:
			m.Check(ctx)
		}
	}
}

// Check probes the directory once.
func (m *DirectoryMonitor) Check(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	err := m.pinger.Ping(ctx)
	up := err == nil
	if !up {
		slog.Warn("directory probe failed", "error", err)
	}

	was := m.up.Swap(up)
	if m.checked.Swap(true) && was != up {
		slog.Info("directory availability changed", "up", up)
	}

	m.report(up)
	return up
}

// Up returns the result of the last probe. Before the first probe the
// directory is assumed available.
func (m *DirectoryMonitor) Up() bool {
	if !m.checked.Load() {
		return true
	}
	return m.up.Load()
}
