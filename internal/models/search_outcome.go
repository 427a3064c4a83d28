package models

import "time"

// Search outcome constants
const (
	OutcomeOK          = "ok"
	OutcomeEmptyInput  = "empty_input"
	OutcomeNoResults   = "no_results"
	OutcomeFetchFailed = "fetch_failed"
)

// SearchOutcome represents a per-kind search count by outcome.
type SearchOutcome struct {
	Kind       string
	Outcome    string
	Count      int64
	LastSeenAt time.Time
}
