package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string
	ViewsDir   string
	StaticDir  string

	// Database
	DatabaseURL string

	// Redis, optional. When set it backs sessions and search history.
	RedisURL string

	// TLS
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string
	TLSCAFile   string // enables mTLS when set

	// Session
	SessionSecret string // Used for encrypting cookies (min 32 chars)

	// CORS
	CORSOrigins string // Comma-separated allowed origins, e.g. "https://example.com,https://app.example.com"

	// Brewery directory
	DirectoryURL           string
	DirectoryTimeout       time.Duration
	DirectoryProbeInterval time.Duration // 0 disables the availability monitor

	// Search history
	HistoryTTL time.Duration // 0 keeps snapshots forever

	// YAML config file with map and brewery type settings
	ConfigFile string

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "Brew Finder"
	SiteTagline string // env: SITE_TAGLINE, default: "Find breweries near you"
	SiteFooter  string // env: SITE_FOOTER
	SiteLogoURL string // env: SITE_LOGO_URL, default: "" (no logo, text only)
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is loaded first if present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Env:         getEnv("ENV", "development"),
		ServerAddr:  getEnv("SERVER_ADDR", ":3000"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:3000"),
		ViewsDir:    getEnv("VIEWS_DIR", "./views"),
		StaticDir:   getEnv("STATIC_DIR", "./static"),
		DatabaseURL: getEnv("DATABASE_URL", "postgres://localhost:5432/brewfinder?sslmode=disable"),
		RedisURL:    getEnv("REDIS_URL", ""),
		TLSEnabled:  getEnv("TLS_ENABLED", "") != "",
		TLSCertFile: getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:  getEnv("TLS_KEY_FILE", ""),
		TLSCAFile:   getEnv("TLS_CA_FILE", ""),

		SessionSecret: getEnv("SESSION_SECRET", "change-me-in-production-min-32-chars"),
		CORSOrigins:   getEnv("CORS_ORIGINS", ""),

		DirectoryURL:           getEnv("DIRECTORY_URL", "https://api.openbrewerydb.org/v1/breweries"),
		DirectoryTimeout:       getDuration("DIRECTORY_TIMEOUT", 10*time.Second),
		DirectoryProbeInterval: getDuration("DIRECTORY_PROBE_INTERVAL", 5*time.Minute),
		HistoryTTL:             getDuration("HISTORY_TTL", 0),
		ConfigFile:             getEnv("CONFIG_FILE", "config.yaml"),

		SiteTitle:   getEnv("SITE_TITLE", "Brew Finder"),
		SiteTagline: getEnv("SITE_TAGLINE", "Find breweries near you"),
		SiteFooter:  getEnv("SITE_FOOTER", "Brew Finder - brewery data from Open Brewery DB"),
		SiteLogoURL: getEnv("SITE_LOGO_URL", ""),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getDuration parses a Go duration ("30s") or a bare number of seconds.
func getDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}
