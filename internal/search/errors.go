package search

import "errors"

// Search failures. None of them are fatal; the page stays usable.
var (
	ErrEmptyInput  = errors.New("empty search input")
	ErrNoResults   = errors.New("no breweries found")
	ErrFetchFailed = errors.New("brewery directory fetch failed")
)

// Messages shown inline after the search form.
const (
	MsgEmptyInput  = "You need a search input value!"
	MsgNoResults   = "No breweries found. Try searching for a different type of brewery or a different ZIP or city"
	MsgFetchFailed = "Something went wrong. Please try again."
)

// Message returns the user-facing text for a search error.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrEmptyInput):
		return MsgEmptyInput
	case errors.Is(err, ErrNoResults):
		return MsgNoResults
	default:
		return MsgFetchFailed
	}
}
