package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("EPEAT_CONFIG", "")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_File(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "epeat.toml"))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/epeat.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "catalogs/tracker.yaml", cfg.Catalog.Tracker)
	assert.Equal(t, "catalogs/risks.yaml", cfg.Catalog.Risks)
	assert.Empty(t, cfg.Catalog.Documentation)
}

func TestLoad_FileFromEnv(t *testing.T) {
	t.Setenv("EPEAT_CONFIG", filepath.Join("testdata", "epeat.toml"))
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("EPEAT_LOG_LEVEL", "warn")
	t.Setenv("EPEAT_DOCUMENTATION_CATALOG", "docs.yaml")
	t.Setenv("EPEAT_SELF_RATING_CATALOG", "ratings.json")

	cfg, err := Load(filepath.Join("testdata", "epeat.toml"))
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/tmp/epeat.log", cfg.Log.File)
	assert.Equal(t, "docs.yaml", cfg.Catalog.Documentation)
	assert.Equal(t, "ratings.json", cfg.Catalog.SelfRating)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"missing file", "missing.toml", "failed to read config file"},
		{"broken toml", "broken.toml", "failed to parse config file"},
		{"bad level", "badlevel.toml", "unsupported log level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(filepath.Join("testdata", tt.path))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestFlags_OverrideEnvAndFile(t *testing.T) {
	t.Setenv("EPEAT_LOG_LEVEL", "warn")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags := RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{
		"--config", filepath.Join("testdata", "epeat.toml"),
		"--log-level", "error",
	}))

	cfg, err := flags.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "/tmp/epeat.log", cfg.Log.File)
}

func TestFlags_EmptyLogFileFlagClearsFile(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags := RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--config", filepath.Join("testdata", "epeat.toml"), "--log-file="}))

	cfg, err := flags.Resolve()
	require.NoError(t, err)
	assert.Empty(t, cfg.Log.File)
}

func TestFlags_InvalidLevelRejected(t *testing.T) {
	t.Setenv("EPEAT_CONFIG", "")
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags := RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--log-level", "loud"}))

	_, err := flags.Resolve()
	require.Error(t, err)
}
