package config

import (
	"os"
	"sort"
	"strings"
)

// ConfigSource identifies where a configuration value came from.
type ConfigSource string

const (
	SourceDefault     ConfigSource = "default"
	SourceSystem      ConfigSource = "system"      // /etc/typedoc/config.toml
	SourceUser        ConfigSource = "user"        // ~/.typedoc/config.toml
	SourceOverride    ConfigSource = "override"    // ~/.typedoc/overrides.toml
	SourceProject     ConfigSource = "project"     // project typedoc.toml
	SourceEnvironment ConfigSource = "environment" // TYPEDOC_* env vars
)

// SourceInfo tracks where a configuration value originated.
type SourceInfo struct {
	Source ConfigSource
	Path   string // file path or environment variable name
}

// SettingInfo is one setting with its provenance.
type SettingInfo struct {
	Key        string       `json:"key"`
	Value      interface{}  `json:"value"`
	Source     ConfigSource `json:"source"`
	SourcePath string       `json:"source_path,omitempty"`
}

// Introspection is the active configuration with per-setting sources.
type Introspection struct {
	ConfigFile string        `json:"config_file"`
	Settings   []SettingInfo `json:"settings"`
}

// GetIntrospection reports every effective setting and the layer it came
// from, using the sources tracked during loading.
func GetIntrospection() (*Introspection, error) {
	v := GetViper()

	if len(ConfigSources) == 0 {
		if _, err := Load(); err != nil {
			return nil, err
		}
	}

	out := &Introspection{
		ConfigFile: v.ConfigFileUsed(),
		Settings:   make([]SettingInfo, 0),
	}
	flattenSettings(v.AllSettings(), "", out, ConfigSources)
	return out, nil
}

func flattenSettings(settings map[string]interface{}, prefix string, out *Introspection, sourceMap map[string]SourceInfo) {
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := settings[key]
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		if nested, ok := value.(map[string]interface{}); ok {
			flattenSettings(nested, fullKey, out, sourceMap)
			continue
		}

		sourceInfo := SourceInfo{Source: SourceDefault, Path: "built-in default"}
		if si, ok := sourceMap[fullKey]; ok {
			sourceInfo = si
		}

		// Environment overrides every file layer.
		envKey := "TYPEDOC_" + strings.ToUpper(strings.ReplaceAll(fullKey, ".", "_"))
		if envValue := os.Getenv(envKey); envValue != "" {
			sourceInfo = SourceInfo{Source: SourceEnvironment, Path: envKey}
		}

		out.Settings = append(out.Settings, SettingInfo{
			Key:        fullKey,
			Value:      value,
			Source:     sourceInfo.Source,
			SourcePath: sourceInfo.Path,
		})
	}
}
