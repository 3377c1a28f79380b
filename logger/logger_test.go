package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestVerbosityToLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		expected  zapcore.Level
	}{
		{VerbosityUser, zapcore.WarnLevel},
		{VerbosityInfo, zapcore.InfoLevel},
		{VerbosityDebug, zapcore.DebugLevel},
		{VerbosityTrace, zapcore.DebugLevel},
		{7, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, VerbosityToLevel(tt.verbosity),
			"verbosity %d", tt.verbosity)
	}
}

func TestInitialize(t *testing.T) {
	require.NoError(t, Initialize(false, VerbosityInfo))
	require.NotNil(t, Logger)
	assert.False(t, JSONOutput)

	require.NoError(t, Initialize(true, VerbosityDebug))
	assert.True(t, JSONOutput)

	Cleanup()
}

func TestFieldsFromContext(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, FieldsFromContext(ctx))

	ctx = WithRequestID(ctx, "req-123")
	ctx = WithComponent(ctx, "resolver")

	fields := FieldsFromContext(ctx)
	require.Len(t, fields, 4)
	assert.Equal(t, FieldRequestID, fields[0])
	assert.Equal(t, "req-123", fields[1])
	assert.Equal(t, FieldComponent, fields[2])
	assert.Equal(t, "resolver", fields[3])
}

func TestLoggerFromContext(t *testing.T) {
	require.NoError(t, Initialize(false, VerbosityUser))

	// No fields: same underlying logger
	assert.NotNil(t, LoggerFromContext(context.Background()))

	ctx := WithRequestID(context.Background(), "req-9")
	assert.NotNil(t, LoggerFromContext(ctx))
}

func TestLevelName(t *testing.T) {
	assert.Equal(t, "User", LevelName(0))
	assert.Equal(t, "Info (-v)", LevelName(1))
	assert.Equal(t, "Debug (-vv)", LevelName(2))
	assert.Equal(t, "Trace (-vvv)", LevelName(3))
}
