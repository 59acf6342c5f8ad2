package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := FromMap(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.False(t, cfg.LenientRatings)
}

func TestOverrides(t *testing.T) {
	cfg, err := FromMap(map[string]string{
		"HTTP_ADDR":       "127.0.0.1:9000",
		"CORS_ORIGINS":    " https://a.example , ,https://b.example",
		"REQUEST_TIMEOUT": "2s",
		"LOG_FORMAT":      "json",
		"LENIENT_RATINGS": "true",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.HTTPAddr)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.True(t, cfg.LenientRatings)
}

func TestPortOverridesAddr(t *testing.T) {
	cfg, err := FromMap(map[string]string{"PORT": "10000"})
	require.NoError(t, err)
	assert.Equal(t, ":10000", cfg.HTTPAddr)

	cfg, err = FromMap(map[string]string{"HTTP_ADDR": "0.0.0.0:8080", "PORT": "5000"})
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:5000", cfg.HTTPAddr)
}

func TestInvalidDuration(t *testing.T) {
	_, err := FromMap(map[string]string{"REQUEST_TIMEOUT": "soon"})
	assert.Error(t, err)
}
