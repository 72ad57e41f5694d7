package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFromEnv_Defaults(t *testing.T) {
	t.Setenv("SAFELENS_API_ADDR", "")
	t.Setenv("SAFELENS_SMS_PROVIDER", "")
	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8000", cfg.Addr)
	assert.Equal(t, ProviderLog, cfg.SMSProvider)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.False(t, cfg.HasLocation)
}

func TestConfigFromEnv_Location(t *testing.T) {
	t.Setenv("SAFELENS_LOCATION_LAT", "-26.1843")
	t.Setenv("SAFELENS_LOCATION_LON", "28.0055")
	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.True(t, cfg.HasLocation)
	assert.Equal(t, -26.1843, cfg.Lat)

	t.Setenv("SAFELENS_LOCATION_LON", "east")
	_, err = ConfigFromEnv()
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	assert.Error(t, (&Config{SMSProvider: "pigeon"}).Validate())
	assert.Error(t, (&Config{SMSProvider: ProviderTwilio}).Validate())
	assert.NoError(t, (&Config{SMSProvider: ProviderTwilio, TwilioAccountSID: "a", TwilioAuthToken: "b", TwilioFrom: "c"}).Validate())
	assert.Error(t, (&Config{SMSProvider: ProviderLog, HasLocation: true, Lat: 91}).Validate())
}
