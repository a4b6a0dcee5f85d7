package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	t.Setenv("ROUTE_STORAGE_DRIVER", "memory")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.True(t, cfg.IsEnvProduction())
	assert.Equal(t, ":8081", cfg.ListenAddress)
	assert.Equal(t, []string{"http://*", "https://*"}, cfg.AllowedOrigins)
	assert.Equal(t, 10, cfg.DefaultPageSize)
	assert.Equal(t, 200, cfg.MaxPageSize)
	assert.Equal(t, time.Minute, cfg.SummaryRefreshInterval)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("ROUTE_ENVIRONMENT", "dev")
	t.Setenv("ROUTE_STORAGE_DRIVER", "mysql")
	t.Setenv("ROUTE_MYSQL_DSN", "route:secret@tcp(localhost:3306)/route")
	t.Setenv("ROUTE_MAX_PAGE_SIZE", "50")
	t.Setenv("ROUTE_SUMMARY_REFRESH_INTERVAL", "15s")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.False(t, cfg.IsEnvProduction())
	assert.Equal(t, StorageDriverMySQL, cfg.StorageDriver)
	assert.Equal(t, "route:secret@tcp(localhost:3306)/route", cfg.MySQLDSN)
	assert.Equal(t, 50, cfg.MaxPageSize)
	assert.Equal(t, 15*time.Second, cfg.SummaryRefreshInterval)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			StorageDriver:   StorageDriverPostgres,
			PostgresDSN:     "postgres://localhost/route",
			DefaultPageSize: 10,
			MaxPageSize:     200,
		}
	}

	assert.NoError(t, valid().Validate())

	cfg := valid()
	cfg.PostgresDSN = ""
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.StorageDriver = "sqlite"
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.MaxPageSize = 5
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.StorageDriver = StorageDriverMemory
	cfg.PostgresDSN = ""
	assert.NoError(t, cfg.Validate())
}
