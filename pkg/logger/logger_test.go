package logger

import (
	"bytes"
	"errors"
	"testing"

	cerr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLogLevel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"DEBUG", zapcore.DebugLevel},
		{"trace", zapcore.DebugLevel},
		{" info ", zapcore.InfoLevel},
		{"ERROR", zapcore.ErrorLevel},
		{"", zapcore.WarnLevel},
		{"nonsense", zapcore.WarnLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLogLevel(tt.in), tt.in)
	}
}

func TestFallbackLoggerWritesConsoleLines(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := NewFallbackLogger(&buf, zapcore.InfoLevel)

	l.Debug("hidden")
	l.Warn("directory missing", zap.String("path", "/tmp/x"))
	require.NoError(t, l.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "directory missing")
	assert.Contains(t, out, "/tmp/x")
	assert.Contains(t, out, ColouredLevel(zapcore.WarnLevel))
}

func TestColouredLevel(t *testing.T) {
	t.Parallel()
	assert.Contains(t, ColouredLevel(zapcore.ErrorLevel), "ERROR")
	assert.Contains(t, ColouredLevel(zapcore.FatalLevel), "FATAL")
	assert.Equal(t, zapcore.Level(42).CapitalString(), ColouredLevel(zapcore.Level(42)))
}

func TestSetLoggerAndL(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	prev := L()
	SetLogger(zap.New(core))
	defer SetLogger(prev)

	L().Info("hello")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "hello", logs.All()[0].Message)
}

func TestWithCommandLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	prev := L()
	SetLogger(zap.New(core))
	defer SetLogger(prev)

	boom := errors.New("boom")
	err := WithCommandLogging("log", func() error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, logs.FilterMessage("Command failed").Len())

	require.NoError(t, WithCommandLogging("types", func() error { return nil }))
	assert.Equal(t, 1, logs.FilterMessage("Command completed").Len())
	assert.Len(t, GenerateTraceID(), 8)
}

func TestLogErrAndWrap(t *testing.T) {
	t.Parallel()
	core, logs := observer.New(zapcore.DebugLevel)
	base := errors.New("disk full")

	err := LogErrAndWrap(zap.New(core), "write failed", base)
	assert.True(t, cerr.Is(err, base))
	assert.Contains(t, err.Error(), "write failed")
	assert.Equal(t, 1, logs.Len())
}
