package provenance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonical(t *testing.T) {
	assert.Equal(t, "", Canonical(""))
	assert.Equal(t, "1.2.3", Canonical("v1.2.3"))
	assert.Equal(t, "2.0.0", Canonical("v2.0.0+incompatible"))
	assert.Equal(t, "not-a-version", Canonical("not-a-version"))
}

func TestIsPseudo(t *testing.T) {
	assert.True(t, IsPseudo("v0.0.0-20230101000000-abcdef123456"))
	assert.False(t, IsPseudo("v1.2.3"))
	assert.False(t, IsPseudo("v1.0.0-rc.1"))
	assert.False(t, IsPseudo("garbage"))
}
