// Package render turns directory records into result cards and map markers.
package render

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"brewfinder/internal/mapview"
	"brewfinder/internal/models"
	"brewfinder/internal/validation"
)

// Fallback text for missing address fields.
const (
	StreetUnavailable = "Street info not available"
	CityUnavailable   = "City not available"
	StateUnavailable  = "State not available"
)

// AnchorPrefix prefixes every card anchor id.
const AnchorPrefix = "brewery-"

// whitespace matches the same runs a browser \s does, Unicode spaces
// such as NBSP included.
var whitespace = regexp.MustCompile(`[\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]+`)

// CardSurface is where cards are displayed.
type CardSurface interface {
	ClearCards()
	AppendCard(card models.Card)
}

// MapSurface is where markers are displayed.
type MapSurface interface {
	Clear()
	AddMarker(lat, lon float64, popup string) mapview.MarkerHandle
	FitToAll()
}

// Renderer draws a result set onto a card list and a map.
type Renderer struct {
	cards   CardSurface
	markers MapSurface
}

// New creates a renderer for the given surfaces.
func New(cards CardSurface, markers MapSurface) *Renderer {
	return &Renderer{cards: cards, markers: markers}
}

// Render replaces the displayed cards and markers with records. Records
// without a name are skipped; records without coordinates get a card but
// no marker.
func (r *Renderer) Render(records []models.Brewery) {
	r.cards.ClearCards()
	r.markers.Clear()

	for _, b := range records {
		if strings.TrimSpace(b.Name) == "" {
			continue
		}

		card := BuildCard(b)
		if b.HasLocation() {
			r.markers.AddMarker(b.Latitude.Value, b.Longitude.Value, PopupHTML(card))
		}
		r.cards.AppendCard(card)
	}

	r.markers.FitToAll()
}

// AnchorID derives the card anchor from a brewery name: lowercased with
// whitespace runs collapsed to a hyphen. Distinct names may collide.
func AnchorID(name string) string {
	return AnchorPrefix + strings.ToLower(whitespace.ReplaceAllString(name, "-"))
}

// BuildCard converts a record into its display card.
func BuildCard(b models.Brewery) models.Card {
	card := models.Card{
		Anchor:    AnchorID(b.Name),
		Name:      b.Name,
		Type:      b.BreweryType,
		Street:    orDefault(b.Street, StreetUnavailable),
		CityState: fmt.Sprintf("%s, %s", orDefault(b.City, CityUnavailable), orDefault(b.State, StateUnavailable)),
	}

	if valid, _ := validation.ValidateURL(b.WebsiteURL); valid {
		card.WebsiteURL = b.WebsiteURL
	}

	return card
}

// PopupHTML is the marker popup: a link to the card and the brewery type.
func PopupHTML(card models.Card) string {
	return fmt.Sprintf(`<a href="#%s"><b>%s</b></a><br>Type: %s`,
		html.EscapeString(card.Anchor),
		html.EscapeString(card.Name),
		html.EscapeString(card.Type),
	)
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
