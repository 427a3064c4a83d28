package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"brewfinder/internal/validation"
)

// YAMLConfig represents the structure of the config.yaml file.
// Map presentation settings and the brewery type list live here rather
// than in env vars.
type YAMLConfig struct {
	Map          MapConfig `yaml:"map"`
	BreweryTypes []string  `yaml:"brewery_types"`
}

// MapConfig defines the initial map view and marker appearance.
type MapConfig struct {
	CenterLat float64 `yaml:"center_lat"`
	CenterLon float64 `yaml:"center_lon"`
	Zoom      int     `yaml:"zoom"`
	MaxZoom   int     `yaml:"max_zoom"`
	TileURL   string  `yaml:"tile_url"`
	IconURL   string  `yaml:"icon_url"`
	IconSize  int     `yaml:"icon_size"` // pixels, square
}

// DefaultYAMLConfig returns the settings used when no file is present:
// a map centered on the continental US with the beer marker icon.
func DefaultYAMLConfig() *YAMLConfig {
	return &YAMLConfig{
		Map: MapConfig{
			CenterLat: 37.8,
			CenterLon: -96.9,
			Zoom:      4,
			MaxZoom:   19,
			TileURL:   "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png",
			IconURL:   "https://img.icons8.com/stickers/100/beer.png",
			IconSize:  54,
		},
		BreweryTypes: append([]string(nil), validation.DefaultBreweryTypes...),
	}
}

// LoadYAMLConfig loads the YAML configuration file at path.
// Returns the defaults without error if the file doesn't exist; fields
// missing from the file keep their defaults.
func LoadYAMLConfig(path string) (*YAMLConfig, error) {
	cfg := DefaultYAMLConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	defaults := DefaultYAMLConfig()
	if cfg.Map.Zoom <= 0 {
		cfg.Map.Zoom = defaults.Map.Zoom
	}
	if cfg.Map.MaxZoom <= 0 {
		cfg.Map.MaxZoom = defaults.Map.MaxZoom
	}
	if cfg.Map.IconSize <= 0 {
		cfg.Map.IconSize = defaults.Map.IconSize
	}
	if cfg.Map.TileURL == "" {
		cfg.Map.TileURL = defaults.Map.TileURL
	}
	if cfg.Map.IconURL == "" {
		cfg.Map.IconURL = defaults.Map.IconURL
	}
	if len(cfg.BreweryTypes) == 0 {
		cfg.BreweryTypes = defaults.BreweryTypes
	}

	return cfg, nil
}
