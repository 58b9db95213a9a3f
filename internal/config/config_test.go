package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Call.Cooldown)
	assert.Equal(t, 10*time.Minute, cfg.Call.TTL)
	assert.Equal(t, 30*time.Second, cfg.Call.SweepInterval)
	assert.NotEmpty(t, cfg.CORS.AllowedOrigins)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("CALL_COOLDOWN", "45s")
	t.Setenv("CALL_TTL", "5m")
	t.Setenv("CALL_SWEEP_INTERVAL", "1m")

	cfg := LoadConfig()

	assert.Equal(t, 45*time.Second, cfg.Call.Cooldown)
	assert.Equal(t, 5*time.Minute, cfg.Call.TTL)
	assert.Equal(t, time.Minute, cfg.Call.SweepInterval)
}

func TestParseDurationFallback(t *testing.T) {
	assert.Equal(t, 30*time.Second, parseDuration("not-a-duration", 30*time.Second))
	assert.Equal(t, 2*time.Minute, parseDuration("2m", time.Second))
}

func TestParseOrigins(t *testing.T) {
	origins := parseOrigins(" http://a.example , http://b.example ,")
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, origins)

	assert.Empty(t, parseOrigins(""))
}
