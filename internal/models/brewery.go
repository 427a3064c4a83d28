package models

import (
	"bytes"
	"log/slog"
	"math"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Brewery is a record returned by the brewery directory. Only Name is
// guaranteed; every other field may be empty.
type Brewery struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	BreweryType string     `json:"brewery_type"`
	Street      string     `json:"street"`
	City        string     `json:"city"`
	State       string     `json:"state"`
	PostalCode  string     `json:"postal_code"`
	Country     string     `json:"country"`
	Phone       string     `json:"phone"`
	WebsiteURL  string     `json:"website_url"`
	Latitude    Coordinate `json:"latitude"`
	Longitude   Coordinate `json:"longitude"`
}

// HasLocation reports whether both latitude and longitude are present.
func (b *Brewery) HasLocation() bool {
	return b.Latitude.Valid && b.Longitude.Valid
}

// Coordinate is an optional latitude or longitude. The directory sends
// these as quoted strings, bare numbers or null depending on the API version.
type Coordinate struct {
	Value float64
	Valid bool
}

// NewCoordinate returns a present coordinate.
func NewCoordinate(v float64) Coordinate {
	return Coordinate{Value: v, Valid: true}
}

// UnmarshalJSON accepts null, a JSON number or a string holding a number.
// Any other value leaves the coordinate absent instead of failing the
// whole record.
func (c *Coordinate) UnmarshalJSON(data []byte) error {
	*c = Coordinate{}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			return nil
		}
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		slog.Warn("ignoring unparsable coordinate", "value", raw)
		return nil
	}

	c.Value = v
	c.Valid = true
	return nil
}

// MarshalJSON writes null for an absent coordinate.
func (c Coordinate) MarshalJSON() ([]byte, error) {
	if !c.Valid {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, c.Value, 'f', -1, 64), nil
}
