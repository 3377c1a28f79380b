// Package provenance normalizes dependency version strings attached to
// resolved declarations.
package provenance

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Canonical normalizes a module version for display: the leading "v" and
// any build metadata are dropped when the string parses as semver.
// Anything that does not parse is passed through untouched.
func Canonical(version string) string {
	if version == "" {
		return ""
	}
	sv, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return version
	}
	out := sv.String()
	if at := strings.IndexByte(out, '+'); at >= 0 {
		out = out[:at]
	}
	return out
}

// IsPseudo reports whether a version is a go pseudo-version
// (v0.0.0-20230101000000-abcdef123456 style).
func IsPseudo(version string) bool {
	sv, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return false
	}
	pre := sv.Prerelease()
	if pre == "" {
		return false
	}
	parts := strings.Split(pre, "-")
	if len(parts) < 2 {
		return false
	}
	stamp := parts[len(parts)-2]
	if len(stamp) != 14 {
		return false
	}
	for _, c := range stamp {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
