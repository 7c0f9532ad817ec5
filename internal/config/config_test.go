package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, []string{"devops", "cloud computing", "covid19", "sports", "nodeJS"}, cfg.Rooms)
	assert.Equal(t, 5*time.Minute, cfg.HistoryCacheTTL)
	assert.Equal(t, 5432, cfg.Postgres.Port)
	assert.Equal(t, "disable", cfg.Postgres.SSLMode)
}

func TestLoadRoomCatalogFromEnv(t *testing.T) {
	t.Setenv("CHAT_ROOMS", "general,off topic,help")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"general", "off topic", "help"}, cfg.Rooms)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("HISTORY_CACHE_TTL", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, 5433, cfg.Postgres.Port)
	assert.Equal(t, 30*time.Second, cfg.HistoryCacheTTL)
}
