package config

import "github.com/spf13/viper"

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	// Project defaults
	v.SetDefault("project.dir", ".")
	v.SetDefault("project.patterns", []string{"./..."})

	// Resolution defaults
	v.SetDefault("resolve.workers", 4)
	v.SetDefault("resolve.filter_path", "")

	// Cache defaults
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.path", "typedoc.db")

	// Output defaults
	v.SetDefault("output.format", "json")
	v.SetDefault("output.pretty", false)
	v.SetDefault("output.path", "")

	// Watch defaults
	v.SetDefault("watch.debounce_ms", 500)
}

// BindEnvVars explicitly binds configuration that is commonly set per
// environment rather than per file.
func BindEnvVars(v *viper.Viper) {
	v.BindEnv("project.dir", "TYPEDOC_PROJECT_DIR")
	v.BindEnv("cache.path", "TYPEDOC_CACHE_PATH")
	v.BindEnv("cache.enabled", "TYPEDOC_CACHE_ENABLED")
	v.BindEnv("output.format", "TYPEDOC_OUTPUT_FORMAT")
}
