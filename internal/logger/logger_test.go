package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopLogger(t *testing.T) {
	l := Noop()
	require.NotNil(t, l)

	// None of these should panic or produce output.
	l.Debug("debug %d", 1)
	l.Info("info %s", "x")
	l.Warn("warn")
	l.Error("error")
}

func TestBufferLogger(t *testing.T) {
	l := NewBufferLogger()

	l.Debug("poll %s issued", "stats")
	l.Info("connected to %s", "appliance")
	l.Warn("slow response")
	l.Error("request failed: %v", "timeout")

	require.Len(t, l.Messages, 4)
	assert.Equal(t, "debug", l.Messages[0].Level)
	assert.Equal(t, "poll stats issued", l.Messages[0].Message)
	assert.Equal(t, "connected to appliance", l.Messages[1].Message)
	assert.Equal(t, "request failed: timeout", l.Messages[3].Message)
}

func TestBufferLoggerHasLevel(t *testing.T) {
	l := NewBufferLogger()
	assert.False(t, l.HasLevel("error"))

	l.Error("boom")
	assert.True(t, l.HasLevel("error"))
	assert.False(t, l.HasLevel("warn"))
}

func TestBufferLoggerClear(t *testing.T) {
	l := NewBufferLogger()
	l.Info("one")
	l.Info("two")
	require.Len(t, l.Messages, 2)

	l.Clear()
	assert.Empty(t, l.Messages)
}

func TestDefaultLogger(t *testing.T) {
	original := Default()
	defer SetDefault(original)

	buf := NewBufferLogger()
	SetDefault(buf)

	Default().Info("through default")
	require.Len(t, buf.Messages, 1)
	assert.Equal(t, "through default", buf.Messages[0].Message)
}
