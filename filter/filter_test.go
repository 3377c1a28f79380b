package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/typedoc/filter"
)

const rulesTOML = `
default_retain = false

[modules."github.com/acme/widgets"]
types = ["Widget", "Theme*"]
exclude_types = ["ThemeInternal"]

[modules."github.com/acme/widgets".properties]
Widget = ["Label", "Size"]

[modules."github.com/acme/open"]
exclude_types = ["Hidden"]
`

func mustParse(t *testing.T) *filter.Filter {
	t.Helper()
	f, err := filter.Parse([]byte(rulesTOML))
	require.NoError(t, err)
	return f
}

func TestRetainTypeMatchesPatterns(t *testing.T) {
	f := mustParse(t)

	keep, err := f.RetainType("github.com/acme/widgets", "Widget")
	require.NoError(t, err)
	assert.True(t, keep)

	keep, err = f.RetainType("github.com/acme/widgets", "ThemeDark")
	require.NoError(t, err)
	assert.True(t, keep, "glob pattern Theme* matches")

	keep, err = f.RetainType("github.com/acme/widgets", "Client")
	require.NoError(t, err)
	assert.False(t, keep)
}

func TestExclusionWinsOverMatch(t *testing.T) {
	f := mustParse(t)

	keep, err := f.RetainType("github.com/acme/widgets", "ThemeInternal")
	require.NoError(t, err)
	assert.False(t, keep, "exclude_types overrides a types match")
}

func TestEmptyTypesListKeepsAllButExcluded(t *testing.T) {
	f := mustParse(t)

	keep, err := f.RetainType("github.com/acme/open", "Anything")
	require.NoError(t, err)
	assert.True(t, keep)

	keep, err = f.RetainType("github.com/acme/open", "Hidden")
	require.NoError(t, err)
	assert.False(t, keep)
}

func TestUnlistedModuleUsesDefault(t *testing.T) {
	f := mustParse(t)

	keep, err := f.RetainType("github.com/other/dep", "Whatever")
	require.NoError(t, err)
	assert.False(t, keep)

	open, err := filter.Parse([]byte("default_retain = true"))
	require.NoError(t, err)
	keep, err = open.RetainType("github.com/other/dep", "Whatever")
	require.NoError(t, err)
	assert.True(t, keep)
}

func TestRetainPropertyRestrictsListedTypesOnly(t *testing.T) {
	f := mustParse(t)

	keep, err := f.RetainProperty("github.com/acme/widgets", "Widget", "Label")
	require.NoError(t, err)
	assert.True(t, keep)

	keep, err = f.RetainProperty("github.com/acme/widgets", "Widget", "secret")
	require.NoError(t, err)
	assert.False(t, keep)

	keep, err = f.RetainProperty("github.com/acme/widgets", "ThemeDark", "anything")
	require.NoError(t, err)
	assert.True(t, keep, "types without a properties entry keep everything")
}

func TestMalformedPatternIsAnError(t *testing.T) {
	f, err := filter.Parse([]byte(`
[modules."github.com/acme/widgets"]
types = ["[bad"]
`))
	require.NoError(t, err)

	_, err = f.RetainType("github.com/acme/widgets", "Widget")
	require.Error(t, err)
}

func TestParseRejectsBadTOML(t *testing.T) {
	_, err := filter.Parse([]byte("not = [valid"))
	require.Error(t, err)
}
