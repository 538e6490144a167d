package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"locus/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `env:
  env: local
  serviceName: locus
  log:
    pretty: true
    level: debug
http:
  port: 9090
route:
  provider: osrm
  origin: "25.0330,121.5654"
  destination: "25.0478,121.5170"
  osrm:
    baseUrl: http://localhost:5000
document:
  path: ./book.pdf
viewer:
  debounceWindow: 250ms
`

func writeConfig(t *testing.T, content string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))
	t.Chdir(dir)
}

func TestNew_LoadsYAMLAndDefaults(t *testing.T) {
	writeConfig(t, sampleConfig)

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "locus", cfg.Env.ServiceName)
	assert.True(t, cfg.Env.Log.Pretty)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, constants.RouteProviderOSRM, cfg.Route.Provider)
	assert.Equal(t, "http://localhost:5000", cfg.Route.OSRM.BaseURL)
	assert.Equal(t, "driving", cfg.Route.OSRM.Profile)
	assert.Equal(t, 250*time.Millisecond, cfg.Viewer.DebounceWindow)

	// Panorama section is absent, so every field falls back
	require.NotNil(t, cfg.Panorama)
	assert.Equal(t, 640, cfg.Panorama.Width)
	assert.Equal(t, 360, cfg.Panorama.Height)
	assert.Equal(t, defaultPanoramaBase, cfg.Panorama.BaseURL)
}

func TestNew_EnvOverridesYAML(t *testing.T) {
	writeConfig(t, sampleConfig)
	t.Setenv("ROUTE_OSRM_BASEURL", "http://osrm.internal:5000")
	t.Setenv("VIEWER_DEBOUNCEWINDOW", "1s")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "http://osrm.internal:5000", cfg.Route.OSRM.BaseURL)
	assert.Equal(t, time.Second, cfg.Viewer.DebounceWindow)
}

func TestNew_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "valid osrm",
			mutate: func(c *Config) {},
		},
		{
			name:    "osrm without base url",
			mutate:  func(c *Config) { c.Route.OSRM.BaseURL = "" },
			wantErr: "baseUrl",
		},
		{
			name:    "osrm without destination",
			mutate:  func(c *Config) { c.Route.Destination = "" },
			wantErr: "destination",
		},
		{
			name: "file provider with path",
			mutate: func(c *Config) {
				c.Route.Provider = constants.RouteProviderFile
				c.Route.File.Path = "route.geojson"
			},
		},
		{
			name:    "file provider without path",
			mutate:  func(c *Config) { c.Route.Provider = constants.RouteProviderFile },
			wantErr: "route.file.path",
		},
		{
			name:    "unknown provider",
			mutate:  func(c *Config) { c.Route.Provider = "google" },
			wantErr: "unknown route provider",
		},
		{
			name:    "no document",
			mutate:  func(c *Config) { c.Document.Path = "" },
			wantErr: "document.path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Route: &RouteConfig{
					Origin:      "0,0",
					Destination: "1,1",
					OSRM:        OSRMConfig{BaseURL: "http://localhost:5000"},
				},
				Document: &DocumentConfig{Path: "book.pdf"},
			}
			cfg.applyDefaults()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
