// Package history keeps each visitor's rolling list of recent searches and
// persists it as a snapshot in a key-value store.
package history

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	json "github.com/goccy/go-json"
)

const (
	// MaxRecent is the number of unique queries kept in a snapshot.
	MaxRecent = 5

	// KeyPrefix prefixes the per-visitor snapshot key.
	KeyPrefix = "recent_searches:"

	// maxLogLen bounds the in-memory append log before it is compacted.
	maxLogLen = 64

	// maxVisitors bounds the number of cached visitor logs.
	maxVisitors = 10000
)

// KV is the durable key-value store holding snapshots. It matches the
// Get/Set subset of fiber.Storage: Get returns nil, nil for a missing key.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, val []byte, exp time.Duration) error
}

// Store owns the recent-search logs of all visitors. The in-memory logs
// are a process-lifetime cache; every mutation rewrites the snapshot.
type Store struct {
	kv  KV
	ttl time.Duration
	log *slog.Logger

	mu   sync.Mutex
	logs map[string][]string
}

// NewStore creates a history store. A zero ttl keeps snapshots forever.
func NewStore(kv KV, ttl time.Duration, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{
		kv:   kv,
		ttl:  ttl,
		log:  log,
		logs: make(map[string][]string),
	}
}

// Key returns the snapshot key of a visitor.
func Key(visitor string) string {
	return KeyPrefix + visitor
}

// For returns the history of one visitor.
func (s *Store) For(visitor string) *Visitor {
	return &Visitor{store: s, id: visitor}
}

// Load reads the persisted snapshot of a visitor. A missing or corrupt
// snapshot yields an empty list, and so does an unreachable store.
func (s *Store) Load(visitor string) []string {
	entries, err := s.load(visitor)
	if err != nil {
		s.log.Warn("failed to read search history", "visitor", visitor, "error", err)
		return []string{}
	}
	return entries
}

// load is Load with read failures reported. Only a failed Get is an
// error; a corrupt snapshot is discarded.
func (s *Store) load(visitor string) ([]string, error) {
	data, err := s.kv.Get(Key(visitor))
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	if len(data) == 0 {
		return []string{}, nil
	}

	var snapshot []string
	if err := json.Unmarshal(data, &snapshot); err != nil {
		s.log.Warn("discarding corrupt search history", "visitor", visitor, "error", err)
		return []string{}, nil
	}

	return Dedupe(snapshot, MaxRecent), nil
}

// Record appends query to the visitor's log and persists the new snapshot.
// The in-memory log is updated even when persisting fails. When the
// snapshot of a visitor not yet cached cannot be read, nothing is cached
// or written so the stored history is not overwritten.
func (s *Store) Record(visitor, query string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, ok := s.logs[visitor]
	if !ok {
		loaded, err := s.load(visitor)
		if err != nil {
			return nil, err
		}
		s.evictLocked()
		entries = loaded
	}

	entries = append(entries, query)
	recent := Dedupe(entries, MaxRecent)
	if len(entries) > maxLogLen {
		entries = slices.Clone(recent)
	}
	s.logs[visitor] = entries

	data, err := json.Marshal(recent)
	if err != nil {
		return recent, err
	}
	if err := s.kv.Set(Key(visitor), data, s.ttl); err != nil {
		return recent, err
	}

	return recent, nil
}

// Recent returns the visitor's recent searches from the in-memory log,
// falling back to the snapshot for a visitor not seen by this process.
func (s *Store) Recent(visitor string) []string {
	s.mu.Lock()
	entries, ok := s.logs[visitor]
	s.mu.Unlock()

	if !ok {
		return s.Load(visitor)
	}
	return Dedupe(entries, MaxRecent)
}

// evictLocked drops one cached log once the cache is full. Dropped logs
// are rebuilt from their snapshot on the next touch.
func (s *Store) evictLocked() {
	if len(s.logs) < maxVisitors {
		return
	}
	for k := range s.logs {
		delete(s.logs, k)
		return
	}
}

// Dedupe collapses duplicates to their most recent position and keeps at
// most limit values, oldest first.
func Dedupe(entries []string, limit int) []string {
	seen := make(map[string]struct{}, len(entries))
	out := make([]string, 0, min(len(entries), limit))

	for i := len(entries) - 1; i >= 0 && len(out) < limit; i-- {
		e := entries[i]
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}

	slices.Reverse(out)
	return out
}

// Visitor is the history of a single visitor.
type Visitor struct {
	store *Store
	id    string
}

// Record stores query as the visitor's newest search.
func (v *Visitor) Record(query string) error {
	_, err := v.store.Record(v.id, query)
	return err
}

// Recent returns the visitor's recent searches, oldest first.
func (v *Visitor) Recent() []string {
	return v.store.Recent(v.id)
}

// Snapshot returns the persisted list as read on page load.
func (v *Visitor) Snapshot() []string {
	return v.store.Load(v.id)
}
