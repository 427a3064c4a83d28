// Package view holds the state of one rendered search page.
package view

import (
	"brewfinder/internal/mapview"
	"brewfinder/internal/models"
	"brewfinder/internal/render"
)

// Page collects everything a search request displays: the result cards,
// the map, the inline error and the recent-search list.
type Page struct {
	Cards  []models.Card
	Error  string
	Recent []string
	Map    *mapview.View
}

// New creates an empty page drawing onto m.
func New(m *mapview.View) *Page {
	return &Page{
		Cards:  []models.Card{},
		Recent: []string{},
		Map:    m,
	}
}

// ClearCards removes all rendered cards.
func (p *Page) ClearCards() {
	p.Cards = p.Cards[:0]
}

// AppendCard adds a card to the end of the results list.
func (p *Page) AppendCard(card models.Card) {
	p.Cards = append(p.Cards, card)
}

// ShowError sets the inline error shown after the form.
func (p *Page) ShowError(message string) {
	p.Error = message
}

// ClearError removes the inline error.
func (p *Page) ClearError() {
	p.Error = ""
}

// Markers returns the page map as a render target.
func (p *Page) Markers() render.MapSurface {
	return p.Map
}

// HasError reports whether an error is shown.
func (p *Page) HasError() bool {
	return p.Error != ""
}
