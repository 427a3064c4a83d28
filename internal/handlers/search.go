package handlers

import (
	"github.com/gofiber/fiber/v3"

	"brewfinder/internal/config"
	"brewfinder/internal/history"
	"brewfinder/internal/mapview"
	"brewfinder/internal/middleware"
	"brewfinder/internal/search"
	"brewfinder/internal/view"
)

// SearchHandler serves the search page and its form submissions.
type SearchHandler struct {
	controller   *search.Controller
	history      *history.Store
	newMap       func() *mapview.View
	breweryTypes []string
	cfg          *config.Config
}

// NewSearchHandler creates a new search handler. newMap builds the empty
// map each page starts from.
func NewSearchHandler(controller *search.Controller, store *history.Store, newMap func() *mapview.View, breweryTypes []string, cfg *config.Config) *SearchHandler {
	return &SearchHandler{
		controller:   controller,
		history:      store,
		newMap:       newMap,
		breweryTypes: breweryTypes,
		cfg:          cfg,
	}
}

// Index renders the search page with the persisted recent searches and the
// default map.
func (h *SearchHandler) Index(c fiber.Ctx) error {
	page := view.New(h.newMap())
	page.Recent = h.history.For(middleware.VisitorID(c)).Snapshot()

	return c.Render("index", h.pageData(page, search.Form{}))
}

// Search runs a submitted search and renders the page, or only the results
// fragment for HTMX requests. Search failures are shown inline with a 200
// so HTMX still swaps the fragment.
func (h *SearchHandler) Search(c fiber.Ctx) error {
	form, err := BindSearchForm(c)
	if err != nil {
		return err
	}

	visitor := h.history.For(middleware.VisitorID(c))
	page := view.New(h.newMap())

	// The outcome is already on the page.
	_, _ = h.controller.OnSubmit(c.Context(), form, visitor, page)
	page.Recent = visitor.Recent()

	data := h.pageData(page, form)
	if isHTMX(c) {
		return c.Render("partials/results", data, "")
	}
	return c.Render("index", data)
}

func (h *SearchHandler) pageData(page *view.Page, form search.Form) fiber.Map {
	return MergeBranding(fiber.Map{
		"Title":        "Search",
		"Page":         page,
		"Form":         form,
		"BreweryTypes": h.breweryTypes,
		"MapData":      page.Map.Data(),
	}, h.cfg)
}
