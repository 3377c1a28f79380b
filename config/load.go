package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/teranos/typedoc/errors"
)

// DefaultDirPermissions is used when creating the ~/.typedoc directory.
const DefaultDirPermissions = 0o750

var (
	globalConfig  *Config
	viperInstance *viper.Viper

	// ConfigSources records where each merged key came from, keyed by the
	// flattened setting name. Populated during load for introspection.
	ConfigSources = make(map[string]SourceInfo)
)

// Load reads the typedoc configuration. The result is cached; use Reset
// to force a reload.
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	v := initViper()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	globalConfig = &config
	return globalConfig, nil
}

// GetViper returns the shared Viper instance for advanced access.
func GetViper() *viper.Viper {
	return initViper()
}

// LoadFromFile loads configuration from a specific file, bypassing the
// layered search.
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "read config file %s", configPath)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrapf(err, "unmarshal config from %s", configPath)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Reset clears the cached configuration (useful for testing).
func Reset() {
	globalConfig = nil
	viperInstance = nil
	ConfigSources = make(map[string]SourceInfo)
}

func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	v.SetEnvPrefix("TYPEDOC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	BindEnvVars(v)

	SetDefaults(v)

	// Merge config files in precedence order: system < user < project.
	mergeConfigFiles(v)

	viperInstance = v
	return v
}

// findProjectConfig searches for typedoc.toml by walking up from the
// working directory.
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		path := filepath.Join(dir, "typedoc.toml")
		if _, err := os.Stat(path); err == nil {
			return path
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// UserConfigDir returns ~/.typedoc, creating it if needed.
func UserConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	dir := filepath.Join(homeDir, ".typedoc")
	os.MkdirAll(dir, DefaultDirPermissions)
	return dir
}

// mergeConfigFiles merges configuration files lowest precedence first and
// records which file supplied each key.
func mergeConfigFiles(v *viper.Viper) {
	type layer struct {
		path   string
		source ConfigSource
	}
	layers := []layer{
		{"/etc/typedoc/config.toml", SourceSystem},
	}
	if userDir := UserConfigDir(); userDir != "" {
		layers = append(layers,
			layer{filepath.Join(userDir, "config.toml"), SourceUser},
			layer{filepath.Join(userDir, "overrides.toml"), SourceOverride},
		)
	}
	if projectConfig := findProjectConfig(); projectConfig != "" {
		layers = append(layers, layer{projectConfig, SourceProject})
	}

	for _, l := range layers {
		if _, err := os.Stat(l.path); err != nil {
			continue
		}
		tempViper := viper.New()
		tempViper.SetConfigFile(l.path)
		tempViper.SetConfigType("toml")
		if err := tempViper.ReadInConfig(); err != nil {
			continue
		}
		for _, key := range tempViper.AllKeys() {
			v.Set(key, tempViper.Get(key))
			ConfigSources[key] = SourceInfo{Source: l.source, Path: l.path}
		}
	}
}

// Get returns a configuration value using dot notation.
func Get(key string) interface{} {
	return initViper().Get(key)
}

// GetString returns a configuration value as string using dot notation.
func GetString(key string) string {
	return initViper().GetString(key)
}

// GetBool returns a configuration value as bool using dot notation.
func GetBool(key string) bool {
	return initViper().GetBool(key)
}

// GetInt returns a configuration value as int using dot notation.
func GetInt(key string) int {
	return initViper().GetInt(key)
}

// GetCachePath returns the configured cache database path.
func GetCachePath() (string, error) {
	if path := os.Getenv("TYPEDOC_CACHE_PATH"); path != "" {
		return path, nil
	}
	config, err := Load()
	if err != nil {
		return "", err
	}
	return config.Cache.Path, nil
}
