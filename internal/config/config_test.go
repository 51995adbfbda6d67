package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("CACHE_TTL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, CacheBackendMemory, cfg.Cache.Backend)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.Equal(t, "8080", cfg.Server.Port)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", DriverSQLite)
	t.Setenv("DB_SQLITE_PATH", "/tmp/rfid.db")
	t.Setenv("CACHE_BACKEND", CacheBackendRedis)
	t.Setenv("CACHE_TTL", "45s")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/rfid.db", cfg.Database.DSN())
	assert.Equal(t, CacheBackendRedis, cfg.Cache.Backend)
	assert.Equal(t, 45*time.Second, cfg.Cache.TTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowOrigins)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Environment: "development",
			Database:    DatabaseConfig{Driver: DriverPostgres},
			Cache:       CacheConfig{Enabled: true, Backend: CacheBackendMemory, TTL: time.Second},
			JWT:         JWTConfig{SecretKey: defaultJWTSecret},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid development config", mutate: func(c *Config) {}},
		{name: "default secret in production", mutate: func(c *Config) {
			c.Environment = "production"
			c.Database.Password = "pw"
		}, wantErr: true},
		{name: "missing db password in production", mutate: func(c *Config) {
			c.Environment = "production"
			c.JWT.SecretKey = "real-secret"
		}, wantErr: true},
		{name: "unknown driver", mutate: func(c *Config) { c.Database.Driver = "mysql" }, wantErr: true},
		{name: "unknown cache backend", mutate: func(c *Config) { c.Cache.Backend = "memcached" }, wantErr: true},
		{name: "zero ttl", mutate: func(c *Config) { c.Cache.TTL = 0 }, wantErr: true},
		{name: "zero ttl ignored when cache disabled", mutate: func(c *Config) {
			c.Cache.Enabled = false
			c.Cache.TTL = 0
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
