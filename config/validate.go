package config

import "github.com/teranos/typedoc/errors"

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	// Workers: 0 = use default, negative = invalid
	if c.Resolve.Workers < 0 {
		return errors.Mark(
			errors.Newf("resolve.workers must be >= 0, got %d", c.Resolve.Workers),
			errors.ErrInvalidConfig)
	}

	switch c.Output.Format {
	case "", "json", "yaml":
	default:
		return errors.Mark(
			errors.Newf("output.format must be json or yaml, got %q", c.Output.Format),
			errors.ErrInvalidConfig)
	}

	if c.Cache.Enabled && c.Cache.Path == "" {
		return errors.Mark(
			errors.New("cache.path cannot be empty when cache is enabled"),
			errors.ErrInvalidConfig)
	}

	if c.Watch.DebounceMs < 0 {
		return errors.Mark(
			errors.Newf("watch.debounce_ms must be >= 0, got %d", c.Watch.DebounceMs),
			errors.ErrInvalidConfig)
	}

	for _, p := range c.Project.Patterns {
		if p == "" {
			return errors.Mark(
				errors.New("project.patterns cannot contain empty patterns"),
				errors.ErrInvalidConfig)
		}
	}

	return nil
}
