package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets keys for the duration of the test.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

var allKeys = []string{
	"SPANNER_DATABASE", "GRPC_PORT", "HTTP_PORT", "LOG_LEVEL", "LOG_FORMAT",
	"PRICE_DISPLAY_TIMEZONE", "SHUTDOWN_TIMEOUT",
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t, allKeys...)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "9090", cfg.GRPCPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
	assert.NotEmpty(t, cfg.SpannerDB)

	loc, err := cfg.DisplayLocation()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t, allKeys...)
	t.Setenv("SPANNER_DATABASE", "projects/p/instances/i/databases/d")
	t.Setenv("HTTP_PORT", "8181")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("PRICE_DISPLAY_TIMEZONE", "Asia/Shanghai")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "projects/p/instances/i/databases/d", cfg.SpannerDB)
	assert.Equal(t, "8181", cfg.HTTPPort)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)

	loc, err := cfg.DisplayLocation()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Shanghai", loc.String())
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]map[string]string{
		"unknown timezone": {"PRICE_DISPLAY_TIMEZONE": "Mars/Olympus"},
		"bad log format":   {"LOG_FORMAT": "xml"},
		"bad duration":     {"SHUTDOWN_TIMEOUT": "soon"},
		"zero timeout":     {"SHUTDOWN_TIMEOUT": "0s"},
		"malformed db":     {"SPANNER_DATABASE": "sku-variants-db"},
	}

	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			clearEnv(t, allKeys...)
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestParseDatabasePath(t *testing.T) {
	p, err := ParseDatabasePath("projects/p1/instances/i1/databases/d1")
	require.NoError(t, err)
	assert.Equal(t, DatabasePath{Project: "p1", Instance: "i1", Database: "d1"}, p)
	assert.Equal(t, "projects/p1", p.ProjectName())
	assert.Equal(t, "projects/p1/instances/i1", p.InstanceName())
	assert.Equal(t, "projects/p1/instances/i1/databases/d1", p.String())

	for _, bad := range []string{
		"",
		"d1",
		"projects/p1/instances/i1",
		"projects/p1/instance/i1/databases/d1",
		"projects//instances/i1/databases/d1",
		"projects/p1/instances/i1/databases/d1/extra",
	} {
		_, err := ParseDatabasePath(bad)
		assert.Error(t, err, bad)
	}
}
