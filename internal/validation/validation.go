package validation

import (
	"net/url"
	"regexp"
	"slices"
	"strings"
)

// PostalCodePattern matches queries made only of ASCII decimal digits.
var PostalCodePattern = regexp.MustCompile(`^[0-9]+$`)

// MaxQueryLength bounds the location text accepted from the search form.
const MaxQueryLength = 100

// DefaultBreweryTypes are the type filters understood by the directory.
var DefaultBreweryTypes = []string{
	"micro",
	"nano",
	"regional",
	"brewpub",
	"large",
	"planning",
	"bar",
	"contract",
	"proprietor",
	"closed",
}

// IsPostalCode reports whether a query should be sent as a postal code.
func IsPostalCode(query string) bool {
	return PostalCodePattern.MatchString(query)
}

// NormalizeQuery trims surrounding whitespace so a blank submission is
// detected as empty.
func NormalizeQuery(query string) string {
	return strings.TrimSpace(query)
}

// ValidateBreweryType reports whether t is empty (no filter) or one of allowed.
func ValidateBreweryType(t string, allowed []string) bool {
	return t == "" || slices.Contains(allowed, t)
}

// ValidateURL checks if a URL is valid and uses an allowed scheme (http/https only).
// This prevents javascript:, data:, vbscript:, and other dangerous URL schemes.
func ValidateURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return false, "URL is required"
	}

	u, err := url.Parse(urlStr)
	if err != nil {
		return false, "Invalid URL format"
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, "URL must use http:// or https:// scheme"
	}

	if u.Host == "" {
		return false, "URL must have a valid host"
	}

	return true, ""
}
