package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATABASE_PATH", "STORE_URL", "SESSION_TTL", "COOKIE_SECURE", "MONTHLY_GROUP_A", "ANNOUNCE_DAY", "BOARD_URL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "./board.db", cfg.DatabasePath)
	assert.Equal(t, "tasks", cfg.RedisKey)
	assert.Equal(t, 720*time.Hour, cfg.SessionTTL)
	assert.True(t, cfg.CookieSecure)
	assert.Equal(t, []string{"NA", "OL"}, cfg.MonthlyGroupA)
	assert.Equal(t, []string{"BA", "AL"}, cfg.MonthlyGroupB)
	assert.Equal(t, 1, cfg.AnnounceDay)
	assert.Equal(t, "08:00", cfg.AnnounceTime)
	assert.Equal(t, "http://localhost:3000", cfg.BoardURL)
	assert.False(t, cfg.UsesRedis())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("STORE_URL", "redis://localhost:6379/0")
	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("COOKIE_SECURE", "false")
	t.Setenv("MONTHLY_GROUP_A", " NA , BA ,")
	t.Setenv("ANNOUNCE_DAY", "5")
	t.Setenv("BOARD_URL", "https://board.example.com/")
	t.Setenv("SITE_PASSWORD_HASH", " abc \n")
	t.Setenv("SLACK_SIGNING_SECRET", "shh")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.UsesRedis())
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.False(t, cfg.CookieSecure)
	assert.Equal(t, []string{"NA", "BA"}, cfg.MonthlyGroupA)
	assert.Equal(t, 5, cfg.AnnounceDay)
	assert.Equal(t, "https://board.example.com", cfg.BoardURL)
	assert.Equal(t, "abc", cfg.SitePasswordHash)
	assert.Equal(t, "shh", cfg.SlackSigningSecret)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "bad ttl", key: "SESSION_TTL", val: "forever"},
		{name: "negative ttl", key: "SESSION_TTL", val: "-1h"},
		{name: "day too small", key: "ANNOUNCE_DAY", val: "0"},
		{name: "day too large", key: "ANNOUNCE_DAY", val: "8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
