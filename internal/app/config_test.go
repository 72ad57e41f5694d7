package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safelens/internal/domain"
)

func TestLoadConfig_MissingFileGivesDefaults(t *testing.T) {
	home := t.TempDir()
	cfg, err := LoadConfig(home, "")
	require.NoError(t, err)

	assert.Equal(t, home, cfg.Home)
	assert.Equal(t, "1111", cfg.Keypad.UnlockCode)
	assert.Equal(t, "222", cfg.Keypad.DuressCode)
	assert.Equal(t, domain.ChannelSMSLink, cfg.Alert.Channel)
	assert.Equal(t, 10*time.Second, cfg.Alert.LocationTimeout)
	assert.Equal(t, domain.SaveToVault, cfg.Capture.Mode)
	assert.Equal(t, StoreFile, cfg.Store.Backend)
	assert.Equal(t, filepath.Join(home, "safelens.log"), cfg.LogFile())
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_YAML(t *testing.T) {
	home := t.TempDir()
	doc := `
keypad:
  unlock_code: "4242"
  duress_code: "911"
alert:
  channel: backend
  location_timeout: 3s
  message: Please call me
location:
  source: static
  lat: 37
  lon: -122
capture:
  mode: download
  download_dir: /tmp/evidence
analysis:
  trigger_phrase: red balloon
store:
  backend: sqlite
`
	require.NoError(t, os.WriteFile(filepath.Join(home, ConfigFile), []byte(doc), 0o600))

	cfg, err := LoadConfig(home, "")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "4242", cfg.Keypad.UnlockCode)
	assert.Equal(t, domain.ChannelBackend, cfg.Alert.Channel)
	assert.Equal(t, 3*time.Second, cfg.Alert.LocationTimeout)
	assert.Equal(t, "Please call me", cfg.Alert.Message)
	assert.Equal(t, LocationStatic, cfg.Location.Source)
	assert.Equal(t, 37.0, cfg.Location.Lat)
	assert.Equal(t, domain.SaveAsDownload, cfg.Capture.Mode)
	assert.Equal(t, "/tmp/evidence", cfg.DownloadDir())
	assert.Equal(t, "red balloon", cfg.Analysis.TriggerPhrase)
	assert.Equal(t, StoreSQLite, cfg.Store.Backend)
	// untouched sections keep their defaults
	assert.Equal(t, "http://127.0.0.1:8000", cfg.Backend.URL)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SAFELENS_BACKEND_URL", "http://api.test:9000")
	t.Setenv("SAFELENS_ALERT_CHANNEL", "backend")
	t.Setenv("SAFELENS_TRIGGER_PHRASE", "pineapple")
	t.Setenv("SAFELENS_STORE_BACKEND", "sqlite")

	cfg, err := LoadConfig(t.TempDir(), "")
	require.NoError(t, err)
	assert.Equal(t, "http://api.test:9000", cfg.Backend.URL)
	assert.Equal(t, domain.ChannelBackend, cfg.Alert.Channel)
	assert.Equal(t, "pineapple", cfg.Analysis.TriggerPhrase)
	assert.Equal(t, StoreSQLite, cfg.Store.Backend)
}

func TestLoadConfig_BadYAML(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, ConfigFile), []byte("keypad: [unclosed"), 0o600))
	_, err := LoadConfig(home, "")
	assert.Error(t, err)
}

func TestConfig_SaveRoundTrip(t *testing.T) {
	home := t.TempDir()
	cfg := DefaultConfig(home)
	cfg.Alert.Message = "Come get me"
	cfg.Alert.LocationTimeout = 7 * time.Second
	path := filepath.Join(home, "nested", ConfigFile)
	require.NoError(t, cfg.Save(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	back, err := LoadConfig(home, path)
	require.NoError(t, err)
	assert.Equal(t, "Come get me", back.Alert.Message)
	assert.Equal(t, 7*time.Second, back.Alert.LocationTimeout)
}

func TestConfig_Validate(t *testing.T) {
	cases := map[string]func(*Config){
		"no home":          func(c *Config) { c.Home = "" },
		"same codes":       func(c *Config) { c.Keypad.DuressCode = c.Keypad.UnlockCode },
		"non-digit code":   func(c *Config) { c.Keypad.UnlockCode = "12ab" },
		"unknown channel":  func(c *Config) { c.Alert.Channel = "carrier-pigeon" },
		"zero timeout":     func(c *Config) { c.Alert.LocationTimeout = 0 },
		"unknown source":   func(c *Config) { c.Location.Source = "gps" },
		"lat out of range": func(c *Config) { c.Location.Source = LocationStatic; c.Location.Lat = 95 },
		"unknown mode":     func(c *Config) { c.Capture.Mode = "cloud" },
		"unknown store":    func(c *Config) { c.Store.Backend = "postgres" },
		"relative url":     func(c *Config) { c.Backend.URL = "localhost:8000" },
		"backend no url": func(c *Config) {
			c.Backend.URL = ""
			c.Alert.Channel = domain.ChannelBackend
		},
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig(t.TempDir())
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
