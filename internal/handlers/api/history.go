package api

import (
	"github.com/gofiber/fiber/v3"

	"brewfinder/internal/history"
	"brewfinder/internal/middleware"
	"brewfinder/internal/models"
)

// HistoryHandler exposes the visitor's recent searches via JSON API.
type HistoryHandler struct {
	history *history.Store
}

// NewHistoryHandler creates a new API history handler.
func NewHistoryHandler(store *history.Store) *HistoryHandler {
	return &HistoryHandler{history: store}
}

// List returns the recent searches of the current visitor, oldest first.
func (h *HistoryHandler) List(c fiber.Ctx) error {
	return jsonSuccess(c, models.HistoryAPIResponse{
		Recent: h.history.For(middleware.VisitorID(c)).Recent(),
	})
}
