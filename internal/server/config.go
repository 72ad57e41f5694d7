package server

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// SMS providers.
const (
	ProviderLog    = "log"
	ProviderTwilio = "twilio"
)

// Config is the backend configuration, read from the environment.
type Config struct {
	Addr            string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration

	SMSProvider      string
	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFrom       string

	// Location is reported by GET /location and appended to alerts.
	HasLocation bool
	Lat, Lon    float64

	LogLevel string
}

// ConfigFromEnv reads SAFELENS_* variables over the defaults.
func ConfigFromEnv() (*Config, error) {
	cfg := &Config{
		Addr:             getEnv("SAFELENS_API_ADDR", "127.0.0.1:8000"),
		RequestTimeout:   getDurationEnv("SAFELENS_API_REQUEST_TIMEOUT", 30*time.Second),
		ShutdownTimeout:  getDurationEnv("SAFELENS_API_SHUTDOWN_TIMEOUT", 10*time.Second),
		SMSProvider:      getEnv("SAFELENS_SMS_PROVIDER", ProviderLog),
		TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFrom:       os.Getenv("TWILIO_PHONE_NUMBER"),
		LogLevel:         getEnv("SAFELENS_LOG_LEVEL", "info"),
	}

	lat, latOK := os.LookupEnv("SAFELENS_LOCATION_LAT")
	lon, lonOK := os.LookupEnv("SAFELENS_LOCATION_LON")
	if latOK || lonOK {
		var err error
		if cfg.Lat, err = strconv.ParseFloat(lat, 64); err != nil {
			return nil, fmt.Errorf("SAFELENS_LOCATION_LAT: %w", err)
		}
		if cfg.Lon, err = strconv.ParseFloat(lon, 64); err != nil {
			return nil, fmt.Errorf("SAFELENS_LOCATION_LON: %w", err)
		}
		cfg.HasLocation = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks provider settings and coordinate ranges.
func (c *Config) Validate() error {
	switch c.SMSProvider {
	case ProviderLog:
	case ProviderTwilio:
		if c.TwilioAccountSID == "" || c.TwilioAuthToken == "" || c.TwilioFrom == "" {
			return fmt.Errorf("twilio provider needs TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN and TWILIO_PHONE_NUMBER")
		}
	default:
		return fmt.Errorf("unknown SMS provider %q (want %q or %q)", c.SMSProvider, ProviderLog, ProviderTwilio)
	}
	if c.HasLocation && (c.Lat < -90 || c.Lat > 90 || c.Lon < -180 || c.Lon > 180) {
		return fmt.Errorf("location %v,%v out of range", c.Lat, c.Lon)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
