package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"brewfinder/internal/handlers"
	"brewfinder/internal/handlers/api"
	"brewfinder/internal/history"
	"brewfinder/internal/mapview"
	"brewfinder/internal/middleware"
	"brewfinder/internal/search"
)

// Deps are the services the routes are served from.
type Deps struct {
	Controller   *search.Controller
	History      *history.Store
	NewMap       func() *mapview.View
	BreweryTypes []string
	DB           handlers.Pinger
	DirectoryUp  func() bool
}

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(deps Deps) {
	// Initialize handlers
	searchHandler := handlers.NewSearchHandler(deps.Controller, deps.History, deps.NewMap, deps.BreweryTypes, s.Cfg)
	probeHandler := handlers.NewProbeHandler(deps.DB, deps.DirectoryUp)
	breweryAPI := api.NewBreweryHandler(deps.Controller, deps.History, deps.NewMap)
	historyAPI := api.NewHistoryHandler(deps.History)

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Frontend routes - every visitor gets an anonymous id for search history
	s.App.Get("/", middleware.Visitor, searchHandler.Index)
	s.App.Get("/search", middleware.Visitor, searchHandler.Search)
	s.App.Post("/search", middleware.Visitor, searchHandler.Search)

	// JSON API
	v1 := s.App.Group("/api/v1", middleware.Visitor)
	v1.Get("/breweries", breweryAPI.Search)
	v1.Get("/history", historyAPI.List)
}
