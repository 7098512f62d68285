package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLogger_DerivedLoggersShareEntries(t *testing.T) {
	mock := NewMockLogger()
	mock.WithField(FieldDocument, "a.pdf").Info("processed")
	mock.WithError(errors.New("bad")).Error("failed")

	entries := mock.GetEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, []Field{{Key: FieldDocument, Value: "a.pdf"}}, entries[0].Fields)
	assert.EqualError(t, entries[1].Error, "bad")
	assert.True(t, mock.HasEntry("ERROR", "failed"))
}

func TestMockLogger_LevelsAndClear(t *testing.T) {
	mock := NewMockLogger()
	mock.Debug("d")
	mock.Warn("w")
	mock.Fatalf("fatal %d", 1)

	assert.Len(t, mock.GetEntriesByLevel("WARN"), 1)
	assert.True(t, mock.HasEntry("FATAL", "fatal 1"))

	mock.Clear()
	assert.Empty(t, mock.GetEntries())
}

func TestMockLogger_ZeroValueUsable(t *testing.T) {
	var mock MockLogger
	mock.Info("works")
	assert.True(t, mock.HasEntry("INFO", "works"))
}
