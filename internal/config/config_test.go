package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("NOTIFICATION_TTL", "")
	t.Setenv("APP_TIMEZONE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "local", cfg.Storage.Driver)
	assert.Equal(t, 5*time.Second, cfg.Notification.TTL)
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "SQLITE")
	t.Setenv("STORAGE_SQLITE_PATH", "/tmp/portal.db")
	t.Setenv("NOTIFICATION_TTL", "250ms")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, "/tmp/portal.db", cfg.Storage.SQLitePath)
	assert.Equal(t, 250*time.Millisecond, cfg.Notification.TTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.App.AllowedOrigins)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("APP_PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			App:          AppConfig{Port: 8080, Timezone: "UTC"},
			Storage:      StorageConfig{Driver: "memory"},
			Notification: NotificationConfig{TTL: time.Second, ReminderInterval: time.Hour},
		}
	}

	cases := []struct {
		name   string
		mutate func(c *Config)
		ok     bool
	}{
		{"memory ok", func(c *Config) {}, true},
		{"unknown driver", func(c *Config) { c.Storage.Driver = "floppy" }, false},
		{"postgres without password", func(c *Config) { c.Storage.Driver = "postgres" }, false},
		{"s3 without bucket", func(c *Config) { c.Storage.Driver = "s3" }, false},
		{"s3 with bucket", func(c *Config) { c.Storage.Driver = "s3"; c.Storage.S3.Bucket = "portal" }, true},
		{"bad timezone", func(c *Config) { c.App.Timezone = "Mars/Olympus" }, false},
		{"zero ttl", func(c *Config) { c.Notification.TTL = 0 }, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestDatabaseURL(t *testing.T) {
	db := DatabaseConfig{Host: "db", Port: 5433, User: "u", Password: "p", Name: "n", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@db:5433/n?sslmode=disable", db.DatabaseURL())
}
