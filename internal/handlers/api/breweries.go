package api

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"brewfinder/internal/history"
	"brewfinder/internal/mapview"
	"brewfinder/internal/middleware"
	"brewfinder/internal/models"
	"brewfinder/internal/search"
	"brewfinder/internal/view"
)

// BreweryHandler runs brewery searches via JSON API.
type BreweryHandler struct {
	controller *search.Controller
	history    *history.Store
	newMap     func() *mapview.View
}

// NewBreweryHandler creates a new API brewery handler.
func NewBreweryHandler(controller *search.Controller, store *history.Store, newMap func() *mapview.View) *BreweryHandler {
	return &BreweryHandler{controller: controller, history: store, newMap: newMap}
}

// Search runs the search given by the q and type query parameters and
// returns the rendered cards and markers. No results is a successful
// response carrying a message; empty input is a 400 and a directory
// failure a 502.
func (h *BreweryHandler) Search(c fiber.Ctx) error {
	var form search.Form
	if err := c.Bind().Query(&form); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid search parameters")
	}

	visitor := h.history.For(middleware.VisitorID(c))
	page := view.New(h.newMap())

	q, err := h.controller.OnSubmit(c.Context(), form, visitor, page)
	switch {
	case errors.Is(err, search.ErrEmptyInput):
		return jsonError(c, fiber.StatusBadRequest, search.Message(err))
	case errors.Is(err, search.ErrFetchFailed):
		return jsonError(c, fiber.StatusBadGateway, search.Message(err))
	}

	var message string
	if err != nil {
		message = search.Message(err)
	}

	return jsonSuccess(c, models.SearchAPIResponse{
		Query:   q,
		Cards:   page.Cards,
		Markers: page.Map.Markers(),
		Bounds:  page.Map.Bounds(),
		Recent:  visitor.Recent(),
		Message: message,
	})
}
