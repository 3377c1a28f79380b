// Package filter decides which dependency types and properties make it
// into the documentation. Rules load from a TOML file keyed by module
// specifier; project-local code is never filtered, so the rules only see
// external surfaces.
package filter

import (
	"path"

	"github.com/BurntSushi/toml"

	"github.com/teranos/typedoc/errors"
)

// Rules is the TOML shape of a filter file.
//
//	default_retain = false
//
//	[modules."github.com/some/dep"]
//	types = ["Client", "Option*"]
//	exclude_types = ["OptionInternal"]
//
//	[modules."github.com/some/dep".properties]
//	Client = ["Do", "Close"]
type Rules struct {
	// DefaultRetain applies to modules with no rule of their own.
	DefaultRetain bool `toml:"default_retain"`

	Modules map[string]ModuleRule `toml:"modules"`
}

// ModuleRule filters one dependency module.
type ModuleRule struct {
	// Types are patterns of type names to keep. Empty keeps everything
	// the exclusions don't remove.
	Types []string `toml:"types"`
	// ExcludeTypes removes matches even when Types matched them.
	ExcludeTypes []string `toml:"exclude_types"`
	// Properties restricts retained types to the listed property name
	// patterns, keyed by type name. Types without an entry keep all
	// properties.
	Properties map[string][]string `toml:"properties"`
}

// Filter applies loaded rules. Implements the resolver's filter
// interface; the zero value retains nothing beyond DefaultRetain=false.
type Filter struct {
	rules Rules
}

// Load reads rules from a TOML file.
func Load(filename string) (*Filter, error) {
	var rules Rules
	if _, err := toml.DecodeFile(filename, &rules); err != nil {
		return nil, errors.Wrapf(err, "load filter rules from %s", filename)
	}
	return New(rules), nil
}

// Parse reads rules from TOML text.
func Parse(data []byte) (*Filter, error) {
	var rules Rules
	if err := toml.Unmarshal(data, &rules); err != nil {
		return nil, errors.Wrap(err, "parse filter rules")
	}
	return New(rules), nil
}

// New wraps already-decoded rules.
func New(rules Rules) *Filter {
	return &Filter{rules: rules}
}

// RetainType reports whether a dependency type survives filtering.
func (f *Filter) RetainType(moduleSpecifier, name string) (bool, error) {
	rule, ok := f.rules.Modules[moduleSpecifier]
	if !ok {
		return f.rules.DefaultRetain, nil
	}
	excluded, err := matchAny(rule.ExcludeTypes, name)
	if err != nil {
		return false, err
	}
	if excluded {
		return false, nil
	}
	if len(rule.Types) == 0 {
		return true, nil
	}
	return matchAny(rule.Types, name)
}

// RetainProperty reports whether a property of a retained dependency
// type survives filtering.
func (f *Filter) RetainProperty(moduleSpecifier, typeName, property string) (bool, error) {
	rule, ok := f.rules.Modules[moduleSpecifier]
	if !ok {
		return true, nil
	}
	patterns, ok := rule.Properties[typeName]
	if !ok {
		return true, nil
	}
	return matchAny(patterns, property)
}

// matchAny reports whether any glob pattern matches the name. Patterns
// use path.Match syntax; a malformed pattern is a configuration error.
func matchAny(patterns []string, name string) (bool, error) {
	for _, p := range patterns {
		ok, err := path.Match(p, name)
		if err != nil {
			return false, errors.Wrapf(err, "bad filter pattern %q", p)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
