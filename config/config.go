package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"locus/internal/domain/constants"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath            = "."
	defaultHTTPPort        = 8080
	defaultDebounceWindow  = 500 * time.Millisecond
	defaultOSRMProfile     = "driving"
	defaultOSRMTimeout     = 10 * time.Second
	defaultPanoramaBase    = "https://maps.googleapis.com/maps/api/streetview"
	defaultPanoramaWidth   = 640
	defaultPanoramaHeight  = 360
	defaultPanoramaFOV     = 90
	defaultPanoramaTimeout = 10 * time.Second
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Route configuration for the route service the path is fetched from
	Route *RouteConfig `json:"route" yaml:"route"`

	// Document configuration for the paged document being read
	Document *DocumentConfig `json:"document" yaml:"document"`

	// Panorama configuration for the street-level imagery provider
	Panorama *PanoramaConfig `json:"panorama" yaml:"panorama"`

	Viewer *ViewerConfig `json:"viewer" yaml:"viewer"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RouteConfig selects and configures the route provider
type RouteConfig struct {
	// Provider type: "osrm" queries an OSRM server, "file" reads a GeoJSON or CSV file
	Provider string `json:"provider" yaml:"provider"`

	// Origin and destination as "lat,lng"
	Origin      string `json:"origin" yaml:"origin"`
	Destination string `json:"destination" yaml:"destination"`

	OSRM OSRMConfig      `json:"osrm" yaml:"osrm"`
	File RouteFileConfig `json:"file" yaml:"file"`
}

// OSRMConfig defines the OSRM route service endpoint
type OSRMConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Profile string        `json:"profile" yaml:"profile"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// RouteFileConfig points at a pre-computed route on disk
type RouteFileConfig struct {
	Path string `json:"path" yaml:"path"`
}

// DocumentConfig defines where the document is read from
type DocumentConfig struct {
	Path string `json:"path" yaml:"path"`
}

// PanoramaConfig defines the street-level image request parameters
type PanoramaConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	APIKey  string        `json:"apiKey" yaml:"apiKey"`
	Width   int           `json:"width" yaml:"width"`
	Height  int           `json:"height" yaml:"height"`
	Pitch   float64       `json:"pitch" yaml:"pitch"`
	FOV     float64       `json:"fov" yaml:"fov"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// ViewerConfig defines how page navigation is coalesced before imagery is refreshed
type ViewerConfig struct {
	DebounceWindow time.Duration `json:"debounceWindow" yaml:"debounceWindow"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// ROUTE_OSRM_BASEURL -> route.osrm.baseUrl, matching the YAML spelling
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults fills every optional section so consumers never see nil
func (c *Config) applyDefaults() {
	if c.HTTP.Port == 0 {
		c.HTTP.Port = defaultHTTPPort
	}

	if c.Route == nil {
		c.Route = &RouteConfig{}
	}
	if c.Route.Provider == "" {
		c.Route.Provider = constants.RouteProviderOSRM
	}
	if c.Route.OSRM.Profile == "" {
		c.Route.OSRM.Profile = defaultOSRMProfile
	}
	if c.Route.OSRM.Timeout <= 0 {
		c.Route.OSRM.Timeout = defaultOSRMTimeout
	}

	if c.Document == nil {
		c.Document = &DocumentConfig{}
	}

	if c.Panorama == nil {
		c.Panorama = &PanoramaConfig{}
	}
	if c.Panorama.BaseURL == "" {
		c.Panorama.BaseURL = defaultPanoramaBase
	}
	if c.Panorama.Width <= 0 {
		c.Panorama.Width = defaultPanoramaWidth
	}
	if c.Panorama.Height <= 0 {
		c.Panorama.Height = defaultPanoramaHeight
	}
	if c.Panorama.FOV <= 0 {
		c.Panorama.FOV = defaultPanoramaFOV
	}
	if c.Panorama.Timeout <= 0 {
		c.Panorama.Timeout = defaultPanoramaTimeout
	}

	if c.Viewer == nil {
		c.Viewer = &ViewerConfig{}
	}
	if c.Viewer.DebounceWindow <= 0 {
		c.Viewer.DebounceWindow = defaultDebounceWindow
	}
}

// Validate reports configuration that cannot produce a working session
func (c *Config) Validate() error {
	switch c.Route.Provider {
	case constants.RouteProviderOSRM:
		if c.Route.OSRM.BaseURL == "" {
			return errors.New("route.osrm.baseUrl is required for osrm provider")
		}
		if c.Route.Origin == "" || c.Route.Destination == "" {
			return errors.New("route.origin and route.destination are required for osrm provider")
		}
	case constants.RouteProviderFile:
		if c.Route.File.Path == "" {
			return errors.New("route.file.path is required for file provider")
		}
	default:
		return errors.Errorf("unknown route provider: %s", c.Route.Provider)
	}

	if c.Document.Path == "" {
		return errors.New("document.path is required")
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
