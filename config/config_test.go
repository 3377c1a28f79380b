package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/typedoc/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "typedoc.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
[project]
dir = "/src/mymodule"
patterns = ["./pkg/...", "./cmd/..."]

[resolve]
workers = 8
filter_path = "filters.toml"

[cache]
enabled = false

[output]
format = "yaml"
pretty = true
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "/src/mymodule", cfg.Project.Dir)
	assert.Equal(t, []string{"./pkg/...", "./cmd/..."}, cfg.Project.Patterns)
	assert.Equal(t, 8, cfg.Resolve.Workers)
	assert.Equal(t, "filters.toml", cfg.Resolve.FilterPath)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.True(t, cfg.Output.Pretty)
}

func TestDefaultsFillUnsetValues(t *testing.T) {
	path := writeConfig(t, `
[output]
format = "json"
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.Project.Dir)
	assert.Equal(t, []string{"./..."}, cfg.Project.Patterns)
	assert.Equal(t, 4, cfg.Resolve.Workers)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, "typedoc.db", cfg.Cache.Path)
	assert.Equal(t, 500, cfg.Watch.DebounceMs)
}

func TestLoadFromMissingFileFails(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative workers", func(c *Config) { c.Resolve.Workers = -1 }},
		{"unknown format", func(c *Config) { c.Output.Format = "xml" }},
		{"cache without path", func(c *Config) { c.Cache.Enabled = true; c.Cache.Path = "" }},
		{"negative debounce", func(c *Config) { c.Watch.DebounceMs = -5 }},
		{"empty pattern", func(c *Config) { c.Project.Patterns = []string{""} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{}
			tc.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrInvalidConfig))
		})
	}
}

func TestValidateAcceptsZeroValue(t *testing.T) {
	cfg := &Config{}
	assert.NoError(t, cfg.Validate())
}

func TestInvalidConfigFileFailsLoad(t *testing.T) {
	path := writeConfig(t, `
[resolve]
workers = -3
`)
	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidConfig))
}

func TestUpdateOverridesPersists(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, UpdateOutputFormat("yaml"))
	require.NoError(t, UpdateResolveWorkers(2))
	require.NoError(t, UpdateCacheEnabled(false))

	data, err := os.ReadFile(OverridesPath())
	require.NoError(t, err)

	var overrides map[string]map[string]interface{}
	require.NoError(t, toml.Unmarshal(data, &overrides))
	assert.Equal(t, "yaml", overrides["output"]["format"])
	assert.Equal(t, int64(2), overrides["resolve"]["workers"])
	assert.Equal(t, false, overrides["cache"]["enabled"])
}

func TestUpdateRejectsInvalidValues(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	require.Error(t, UpdateOutputFormat("xml"))
	require.Error(t, UpdateResolveWorkers(-1))
}

func TestBackupRotation(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	for i := 0; i < 4; i++ {
		require.NoError(t, UpdateResolveWorkers(i))
	}

	path := OverridesPath()
	for _, suffix := range []string{".back1", ".back2", ".back3"} {
		_, err := os.Stat(path + suffix)
		assert.NoError(t, err, "expected backup %s", suffix)
	}
}

func TestIsBackupFile(t *testing.T) {
	assert.True(t, isBackupFile("/home/u/.typedoc/overrides.toml.back1"))
	assert.True(t, isBackupFile("config.toml.back3"))
	assert.False(t, isBackupFile("/home/u/.typedoc/config.toml"))
}
