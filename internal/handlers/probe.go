package handlers

import (
	"context"

	"github.com/gofiber/fiber/v3"
)

// Pinger checks that a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	db        Pinger
	directory func() bool
}

// NewProbeHandler creates a new probe handler. directoryUp reports the last
// known availability of the brewery directory and may be nil.
func NewProbeHandler(database Pinger, directoryUp func() bool) *ProbeHandler {
	if directoryUp == nil {
		directoryUp = func() bool { return true }
	}
	return &ProbeHandler{db: database, directory: directoryUp}
}

// Liveness handles the /healthz endpoint for Kubernetes liveness probes.
// Returns 200 OK if the application is running.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint for Kubernetes readiness probes.
// Returns 200 OK if the application can serve traffic (database is reachable).
// An unreachable directory is reported but does not fail the probe: the
// page stays usable and shows the fetch error inline.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	directory := "up"
	if !h.directory() {
		directory = "down"
	}

	if err := h.db.Ping(c.Context()); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":    "error",
			"error":     "database unavailable",
			"directory": directory,
		})
	}

	return c.JSON(fiber.Map{
		"status":    "ok",
		"directory": directory,
	})
}
