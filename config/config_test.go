package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("PORT", "")
	t.Setenv("CHAT_STORE", "")
	t.Setenv("CHAT_TYPING_DELAY_MS", "")
	t.Setenv("CHAT_SESSION_TTL_MINUTES", "")
	t.Setenv("RATE_LIMIT_PER_SECOND", "")
	t.Setenv("RATE_LIMIT_BURST", "")
	t.Setenv("CORS_ORIGIN", "")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "concierge.db", cfg.DatabaseDSN)
	assert.Equal(t, ChatStoreMemory, cfg.ChatStore)
	assert.Equal(t, time.Second, cfg.ChatTypingDelay)
	assert.Equal(t, time.Hour, cfg.ChatSessionTTL)
	assert.Equal(t, 5.0, cfg.RateLimitPerSecond)
	assert.Equal(t, 10, cfg.RateLimitBurst)
	assert.Equal(t, "http://localhost:5173", cfg.CORSOrigin)
}

func TestFromEnvErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"mysql without dsn", map[string]string{"DB_DRIVER": "mysql", "DATABASE_DSN": ""}},
		{"unknown driver", map[string]string{"DB_DRIVER": "oracle"}},
		{"redis without url", map[string]string{"DB_DRIVER": "sqlite", "CHAT_STORE": "redis", "REDIS_URL": ""}},
		{"bad delay", map[string]string{"DB_DRIVER": "sqlite", "CHAT_TYPING_DELAY_MS": "soon"}},
		{"negative delay", map[string]string{"DB_DRIVER": "sqlite", "CHAT_TYPING_DELAY_MS": "-5"}},
		{"zero burst", map[string]string{"DB_DRIVER": "sqlite", "RATE_LIMIT_BURST": "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}

func TestInitDBSQLite(t *testing.T) {
	cfg := &Config{DBDriver: DriverSQLite, DatabaseDSN: "file::memory:"}
	db, err := InitDB(cfg)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.NoError(t, sqlDB.Ping())
	sqlDB.Close()
}
