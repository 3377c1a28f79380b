// Package config loads typedoc's layered configuration: built-in
// defaults, then system, user, and project TOML files, then TYPEDOC_*
// environment variables, each layer overriding the last.
package config

import "fmt"

// Config is the typedoc configuration.
type Config struct {
	Project ProjectConfig `mapstructure:"project"`
	Resolve ResolveConfig `mapstructure:"resolve"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Output  OutputConfig  `mapstructure:"output"`
	Watch   WatchConfig   `mapstructure:"watch"`
}

// ProjectConfig locates the sources to document.
type ProjectConfig struct {
	Dir      string   `mapstructure:"dir"`      // module root (default: ".")
	Patterns []string `mapstructure:"patterns"` // package patterns (default: ["./..."])
}

// ResolveConfig tunes the resolution run.
type ResolveConfig struct {
	Workers    int    `mapstructure:"workers"`     // concurrent symbol resolutions per package (default: 4)
	FilterPath string `mapstructure:"filter_path"` // TOML filter rules, empty = no filtering
}

// CacheConfig configures the SQLite resolution cache.
type CacheConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"` // database file (default: typedoc.db)
}

// OutputConfig controls how resolved documentation is written.
type OutputConfig struct {
	Format string `mapstructure:"format"` // json or yaml
	Pretty bool   `mapstructure:"pretty"` // indent JSON output
	Path   string `mapstructure:"path"`   // output file, empty = stdout
}

// WatchConfig configures watch mode.
type WatchConfig struct {
	DebounceMs int `mapstructure:"debounce_ms"` // settle period after a change burst (default: 500)
}

// String returns a short summary of the config.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Project: %s, Output: %s, Cache: {Enabled: %t, Path: %s}}",
		c.Project.Dir, c.Output.Format, c.Cache.Enabled, c.Cache.Path)
}
