package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/teranos/typedoc/errors"
	"github.com/teranos/typedoc/logger"
)

// createBackup creates rotating backups (.back1, .back2, .back3) before
// modifying a config file.
func createBackup(configPath string) error {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil
	}

	back3 := configPath + ".back3"
	back2 := configPath + ".back2"
	back1 := configPath + ".back1"

	if err := os.Remove(back3); err != nil && !os.IsNotExist(err) {
		// A stuck oldest backup shouldn't block saving config.
		logger.Warnw("Failed to delete old backup",
			logger.FieldPath, back3,
			logger.FieldError, err,
		)
	}
	if _, err := os.Stat(back2); err == nil {
		if err := os.Rename(back2, back3); err != nil {
			return errors.Wrap(err, "rotate .back2 to .back3")
		}
	}
	if _, err := os.Stat(back1); err == nil {
		if err := os.Rename(back1, back2); err != nil {
			return errors.Wrap(err, "rotate .back1 to .back2")
		}
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		return errors.Wrap(err, "read config for backup")
	}
	if err := os.WriteFile(back1, content, 0o644); err != nil {
		return errors.Wrap(err, "create .back1")
	}
	return nil
}

// OverridesPath returns the path of the persisted overrides file in
// ~/.typedoc/overrides.toml.
func OverridesPath() string {
	dir := UserConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "overrides.toml")
}

// loadOrInitializeOverrides loads the overrides file, or starts an empty
// one if it doesn't exist yet.
func loadOrInitializeOverrides() (map[string]interface{}, string, error) {
	configPath := OverridesPath()
	if configPath == "" {
		return nil, "", errors.New("could not determine home directory")
	}

	var overrides map[string]interface{}
	if data, err := os.ReadFile(configPath); err == nil {
		if err := toml.Unmarshal(data, &overrides); err != nil {
			return nil, "", errors.Wrap(err, "parse overrides file")
		}
	} else {
		overrides = make(map[string]interface{})
	}
	return overrides, configPath, nil
}

// saveOverrides writes the overrides file with backup, marking the write
// as our own so a running watcher doesn't reload on it.
func saveOverrides(overrides map[string]interface{}, configPath string) error {
	if err := createBackup(configPath); err != nil {
		return errors.Wrap(err, "create backup")
	}

	data, err := toml.Marshal(overrides)
	if err != nil {
		return errors.Wrap(err, "marshal overrides")
	}

	globalWatcherMu.Lock()
	if globalWatcher != nil {
		globalWatcher.MarkOwnWrite()
	}
	globalWatcherMu.Unlock()

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return errors.Wrap(err, "write overrides file")
	}
	return nil
}

// section returns a named table from the overrides map, creating it when
// absent.
func section(overrides map[string]interface{}, name string) map[string]interface{} {
	if s, ok := overrides[name].(map[string]interface{}); ok {
		return s
	}
	s := make(map[string]interface{})
	overrides[name] = s
	return s
}

// UpdateCacheEnabled persists the cache.enabled setting.
func UpdateCacheEnabled(enabled bool) error {
	overrides, configPath, err := loadOrInitializeOverrides()
	if err != nil {
		return err
	}
	section(overrides, "cache")["enabled"] = enabled
	return saveOverrides(overrides, configPath)
}

// UpdateOutputFormat persists the output.format setting.
func UpdateOutputFormat(format string) error {
	if format != "json" && format != "yaml" {
		return errors.Mark(
			errors.Newf("output.format must be json or yaml, got %q", format),
			errors.ErrInvalidConfig)
	}
	overrides, configPath, err := loadOrInitializeOverrides()
	if err != nil {
		return err
	}
	section(overrides, "output")["format"] = format
	return saveOverrides(overrides, configPath)
}

// UpdateResolveWorkers persists the resolve.workers setting.
func UpdateResolveWorkers(workers int) error {
	if workers < 0 {
		return errors.Mark(
			errors.Newf("resolve.workers must be >= 0, got %d", workers),
			errors.ErrInvalidConfig)
	}
	overrides, configPath, err := loadOrInitializeOverrides()
	if err != nil {
		return err
	}
	section(overrides, "resolve")["workers"] = workers
	return saveOverrides(overrides, configPath)
}
