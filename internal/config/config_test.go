package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvAPIBaseURL, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvPageSize, "")

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, DefaultAPIBaseURL, c.APIBaseURL)
	require.Equal(t, "info", c.LogLevel)
	require.Equal(t, DefaultPageSize, c.PageSize)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvAPIBaseURL, "https://blog.example.com/api")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvPageSize, "5")

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, "https://blog.example.com/api", c.APIBaseURL)
	require.Equal(t, "debug", c.LogLevel)
	require.Equal(t, 5, c.PageSize)
}

func TestLoadIgnoresInvalidPageSize(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvAPIBaseURL, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvPageSize, "zero")

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, DefaultPageSize, c.PageSize)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvAPIBaseURL, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvPageSize, "")

	saved := Config{APIBaseURL: "https://blog.example.com/api", LogLevel: "warn", PageSize: 12}
	require.NoError(t, Save(saved))

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, saved, c)
}
