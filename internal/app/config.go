package app

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"safelens/internal/domain"
	"safelens/internal/services/disguise"
	"safelens/internal/services/location"
)

// ConfigFile is the file name looked up under Home.
const ConfigFile = "config.yaml"

// Store backends.
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
)

// Location sources.
const (
	LocationBackend = "backend"
	LocationStatic  = "static"
	LocationDenied  = "denied"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home string `yaml:"-"` // data directory, e.g. $HOME/.safelens

	Backend  BackendConfig  `yaml:"backend"`
	Keypad   KeypadConfig   `yaml:"keypad"`
	Alert    AlertConfig    `yaml:"alert"`
	Location LocationConfig `yaml:"location"`
	Capture  CaptureConfig  `yaml:"capture"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Store    StoreConfig    `yaml:"store"`
	Logging  LoggingConfig  `yaml:"logging"`

	HTTP     *http.Client    `yaml:"-"` // optional; defaults to a client with Backend.Timeout
	Launcher domain.Launcher `yaml:"-"` // optional; defaults to the system URL opener
}

// BackendConfig locates the SafeLens API.
type BackendConfig struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
}

// KeypadConfig holds the calculator codes.
type KeypadConfig struct {
	UnlockCode string `yaml:"unlock_code"`
	DuressCode string `yaml:"duress_code"`
}

// AlertConfig selects how alerts are delivered.
type AlertConfig struct {
	Channel         domain.Channel `yaml:"channel"`
	LocationTimeout time.Duration  `yaml:"location_timeout"`
	Message         string         `yaml:"message"`
}

// LocationConfig selects the position source.
type LocationConfig struct {
	Source string  `yaml:"source"`
	Lat    float64 `yaml:"lat"`
	Lon    float64 `yaml:"lon"`
}

// CaptureConfig controls recording.
type CaptureConfig struct {
	Mode        domain.SaveMode `yaml:"mode"`
	DownloadDir string          `yaml:"download_dir"`
	// Source is a WAV file used as the microphone. Empty means no input
	// device is available.
	Source string `yaml:"source"`
}

// AnalysisConfig holds the trigger phrase; empty disables it.
type AnalysisConfig struct {
	TriggerPhrase string `yaml:"trigger_phrase"`
}

// StoreConfig selects the local persistence backend.
type StoreConfig struct {
	Backend string `yaml:"backend"`
}

// LoggingConfig controls the client log. The client never logs to the
// terminal.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// DefaultConfig returns the built-in configuration for home.
func DefaultConfig(home string) *Config {
	return &Config{
		Home: home,
		Backend: BackendConfig{
			URL:     "http://127.0.0.1:8000",
			Timeout: 15 * time.Second,
		},
		Keypad: KeypadConfig{
			UnlockCode: disguise.DefaultUnlockCode,
			DuressCode: disguise.DefaultDuressCode,
		},
		Alert: AlertConfig{
			Channel:         domain.ChannelSMSLink,
			LocationTimeout: location.DefaultTimeout,
		},
		Location: LocationConfig{Source: LocationBackend},
		Capture:  CaptureConfig{Mode: domain.SaveToVault},
		Store:    StoreConfig{Backend: StoreFile},
		Logging:  LoggingConfig{Level: "info"},
	}
}

// LoadConfig reads path over the defaults and applies environment
// overrides. A missing file is not an error.
func LoadConfig(home, path string) (*Config, error) {
	cfg := DefaultConfig(home)
	if path == "" {
		path = filepath.Join(home, ConfigFile)
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration as YAML, readable only by the owner.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("SAFELENS_BACKEND_URL"); v != "" {
		c.Backend.URL = v
	}
	if v := os.Getenv("SAFELENS_ALERT_CHANNEL"); v != "" {
		c.Alert.Channel = domain.Channel(v)
	}
	if v := os.Getenv("SAFELENS_LOCATION_SOURCE"); v != "" {
		c.Location.Source = v
	}
	if v := os.Getenv("SAFELENS_CAPTURE_MODE"); v != "" {
		c.Capture.Mode = domain.SaveMode(v)
	}
	if v := os.Getenv("SAFELENS_TRIGGER_PHRASE"); v != "" {
		c.Analysis.TriggerPhrase = v
	}
	if v := os.Getenv("SAFELENS_STORE_BACKEND"); v != "" {
		c.Store.Backend = v
	}
	if v := os.Getenv("SAFELENS_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks every enumerated option and the keypad codes.
func (c *Config) Validate() error {
	if c.Home == "" {
		return fmt.Errorf("home directory not set")
	}
	if err := disguise.ValidateCodes(c.Keypad.UnlockCode, c.Keypad.DuressCode); err != nil {
		return fmt.Errorf("keypad: %w", err)
	}
	switch c.Alert.Channel {
	case domain.ChannelSMSLink, domain.ChannelBackend:
	default:
		return fmt.Errorf("alert.channel %q: want %q or %q", c.Alert.Channel, domain.ChannelSMSLink, domain.ChannelBackend)
	}
	if c.Alert.LocationTimeout <= 0 {
		return fmt.Errorf("alert.location_timeout must be positive")
	}
	switch c.Location.Source {
	case LocationBackend, LocationDenied:
	case LocationStatic:
		if c.Location.Lat < -90 || c.Location.Lat > 90 || c.Location.Lon < -180 || c.Location.Lon > 180 {
			return fmt.Errorf("location %v,%v out of range", c.Location.Lat, c.Location.Lon)
		}
	default:
		return fmt.Errorf("location.source %q: want %s, %s or %s", c.Location.Source, LocationBackend, LocationStatic, LocationDenied)
	}
	switch c.Capture.Mode {
	case domain.SaveToVault, domain.SaveAsDownload:
	default:
		return fmt.Errorf("capture.mode %q: want %q or %q", c.Capture.Mode, domain.SaveToVault, domain.SaveAsDownload)
	}
	switch c.Store.Backend {
	case StoreFile, StoreSQLite:
	default:
		return fmt.Errorf("store.backend %q: want %s or %s", c.Store.Backend, StoreFile, StoreSQLite)
	}
	needsBackend := c.Alert.Channel == domain.ChannelBackend || c.Location.Source == LocationBackend
	if needsBackend && c.Backend.URL == "" {
		return fmt.Errorf("backend.url is required by the %s alert channel or location source", domain.ChannelBackend)
	}
	if c.Backend.URL != "" {
		u, err := url.Parse(c.Backend.URL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("backend.url %q is not an absolute URL", c.Backend.URL)
		}
	}
	return nil
}

// LogFile is where the client writes its log.
func (c *Config) LogFile() string {
	if c.Logging.File != "" {
		return c.Logging.File
	}
	return filepath.Join(c.Home, "safelens.log")
}

// DownloadDir is where download-mode recordings are written.
func (c *Config) DownloadDir() string {
	if c.Capture.DownloadDir != "" {
		return c.Capture.DownloadDir
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, "Downloads")
	}
	return filepath.Join(c.Home, "downloads")
}
