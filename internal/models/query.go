package models

import "brewfinder/internal/validation"

// QueryKind selects which location parameter is sent to the directory.
type QueryKind string

const (
	KindPostalCode QueryKind = "postal_code"
	KindCity       QueryKind = "city"

	// KindNone labels submissions rejected before classification.
	KindNone QueryKind = "none"
)

// Directory query parameter names.
const (
	ParamPostal = "by_postal"
	ParamCity   = "by_city"
	ParamType   = "by_type"
)

// Query is a classified search request. It is built once per submission
// and never modified afterwards.
type Query struct {
	Raw  string    `json:"raw"`
	Kind QueryKind `json:"kind"`
	Type string    `json:"type,omitempty"`
}

// NewQuery classifies raw as a postal code when it consists only of
// decimal digits, and as a city otherwise.
func NewQuery(raw, breweryType string) Query {
	return Query{
		Raw:  raw,
		Kind: ClassifyQuery(raw),
		Type: breweryType,
	}
}

// ClassifyQuery returns the kind of the raw location text.
func ClassifyQuery(raw string) QueryKind {
	if validation.IsPostalCode(raw) {
		return KindPostalCode
	}
	return KindCity
}

// Param returns the directory parameter name for the query kind.
func (q Query) Param() string {
	if q.Kind == KindPostalCode {
		return ParamPostal
	}
	return ParamCity
}
