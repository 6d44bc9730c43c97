package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLoggerCapturesEntries(t *testing.T) {
	m := NewMockLogger()

	m.Info("hello", Field{Key: "k", Value: "v"})
	m.Warn("watch out")

	entries := m.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "INFO", entries[0].Level)
	assert.Equal(t, "hello", entries[0].Message)
	require.Len(t, entries[0].Fields, 1)
	assert.Equal(t, "k", entries[0].Fields[0].Key)
	assert.True(t, m.HasMessage("watch out"))
	assert.False(t, m.HasMessage("never logged"))
}

func TestMockLoggerDerivedLoggersShareSink(t *testing.T) {
	m := NewMockLogger()
	err := errors.New("boom")

	m.WithError(err).WithField("stage", "load").Warn("failed")
	m.WithFields(Field{Key: "a", Value: 1}, Field{Key: "b", Value: 2}).Debug("detail")

	entries := m.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, err, entries[0].Error)
	require.Len(t, entries[0].Fields, 1)
	assert.Equal(t, "stage", entries[0].Fields[0].Key)
	require.Len(t, entries[1].Fields, 2)
}

func TestLogrusAdapterLevels(t *testing.T) {
	logger := NewLogrusAdapter("debug", "json")
	require.NotNil(t, logger)

	// Derived loggers keep the Logger interface.
	derived := logger.WithError(errors.New("x")).WithField("k", "v")
	assert.NotNil(t, derived)

	// Invalid level falls back without panicking.
	assert.NotNil(t, NewLogrusAdapter("not-a-level", "text"))
}

func TestGetLoggerSingleton(t *testing.T) {
	a := GetLogger()
	b := GetLogger()
	assert.Same(t, a, b)
}
