package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DIRECTORY_URL", "")
	t.Setenv("DIRECTORY_TIMEOUT", "")
	t.Setenv("ENV", "")

	cfg := Load()

	assert.Equal(t, "https://api.openbrewerydb.org/v1/breweries", cfg.DirectoryURL)
	assert.Equal(t, 10*time.Second, cfg.DirectoryTimeout)
	assert.True(t, cfg.IsDev())
}

func TestGetDuration(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"unset", "", time.Minute},
		{"go duration", "30s", 30 * time.Second},
		{"bare seconds", "45", 45 * time.Second},
		{"garbage", "soon", time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_DURATION", tt.value)
			assert.Equal(t, tt.want, getDuration("TEST_DURATION", time.Minute))
		})
	}
}

func TestIsDev(t *testing.T) {
	assert.True(t, (&Config{Env: "dev"}).IsDev())
	assert.True(t, (&Config{Env: "development"}).IsDev())
	assert.False(t, (&Config{Env: "production"}).IsDev())
}

func TestLoadYAMLConfig_MissingFile(t *testing.T) {
	cfg, err := LoadYAMLConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultYAMLConfig(), cfg)
}

func TestLoadYAMLConfig_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
map:
  center_lat: 47.6
  center_lon: -122.3
  zoom: 10
brewery_types:
  - micro
  - brewpub
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadYAMLConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 47.6, cfg.Map.CenterLat)
	assert.Equal(t, 10, cfg.Map.Zoom)
	assert.Equal(t, 54, cfg.Map.IconSize)
	assert.Equal(t, 19, cfg.Map.MaxZoom)
	assert.Equal(t, "https://img.icons8.com/stickers/100/beer.png", cfg.Map.IconURL)
	assert.Equal(t, []string{"micro", "brewpub"}, cfg.BreweryTypes)
}

func TestLoadYAMLConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("map: [unclosed"), 0o600))

	_, err := LoadYAMLConfig(path)
	assert.Error(t, err)
}
