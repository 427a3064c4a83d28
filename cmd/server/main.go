package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/storage/memory/v2"

	"brewfinder/internal/config"
	"brewfinder/internal/db"
	"brewfinder/internal/directory"
	"brewfinder/internal/history"
	"brewfinder/internal/jobs"
	"brewfinder/internal/logging"
	"brewfinder/internal/mapview"
	"brewfinder/internal/metrics"
	"brewfinder/internal/models"
	"brewfinder/internal/search"
	"brewfinder/internal/server"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()
	log := logging.New(cfg.Env)

	yamlCfg, err := config.LoadYAMLConfig(cfg.ConfigFile)
	if err != nil {
		log.Error("failed to load config file", "path", cfg.ConfigFile, "error", err)
		os.Exit(1)
	}

	// Initialize database
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	log.Info("migrations completed successfully")

	metrics.Init(database)
	defer metrics.Flush()

	// Search history lives in redis when configured. Without redis,
	// development keeps it in process memory and other environments use
	// postgres.
	var (
		kv             history.KV
		sessionStorage fiber.Storage
	)
	switch {
	case cfg.RedisURL != "":
		redisKV := history.NewRedisKV(cfg.RedisURL)
		defer redisKV.Close()
		kv = redisKV
		sessionStorage = redisKV
		log.Info("using redis for sessions and search history")
	case cfg.IsDev():
		memKV := memory.New()
		defer memKV.Close()
		kv = memKV
		log.Info("using process memory for search history")
	default:
		pgKV := db.NewKVStore(database)
		kv = pgKV
		if cfg.HistoryTTL > 0 {
			go jobs.NewKVSweeper(pgKV, time.Hour).Start(ctx)
		}
	}
	store := history.NewStore(kv, cfg.HistoryTTL, log)

	client := directory.New(cfg.DirectoryURL, cfg.DirectoryTimeout, log)
	controller := search.NewController(client, metrics.RecordSearchOutcome, log)

	monitor := jobs.NewDirectoryMonitor(client, cfg.DirectoryProbeInterval, metrics.SetDirectoryUp)
	if cfg.DirectoryProbeInterval > 0 {
		go monitor.Start(ctx)
	}

	mapCfg := yamlCfg.Map
	newMap := func() *mapview.View {
		return mapview.New(
			mapview.Icon{URL: mapCfg.IconURL, Size: mapCfg.IconSize},
			models.MapView{
				Center: models.LatLng{Lat: mapCfg.CenterLat, Lon: mapCfg.CenterLon},
				Zoom:   mapCfg.Zoom,
			},
			mapCfg.TileURL,
			mapCfg.MaxZoom,
		)
	}

	srv := server.New(cfg, yamlCfg.BreweryTypes, sessionStorage, log)
	srv.RegisterRoutes(server.Deps{
		Controller:   controller,
		History:      store,
		NewMap:       newMap,
		BreweryTypes: yamlCfg.BreweryTypes,
		DB:           database,
		DirectoryUp:  monitor.Up,
	})

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	cancel()
	if err := srv.Shutdown(); err != nil {
		log.Error("server forced to shutdown", "error", err)
	}
	log.Info("server exited")
}
