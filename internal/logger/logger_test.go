package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Levels(t *testing.T) {
	var quiet bytes.Buffer
	l := New(&quiet, false)
	l.Debug("hidden debug")
	l.Warn("visible warning", "op", "save")
	assert.NotContains(t, quiet.String(), "hidden debug")
	assert.Contains(t, quiet.String(), "visible warning")
	assert.Contains(t, quiet.String(), "op=save")

	var verbose bytes.Buffer
	New(&verbose, true).Debug("task store loaded", "tasks", 3)
	assert.Contains(t, verbose.String(), "level=DEBUG")
	assert.Contains(t, verbose.String(), "tasks=3")
}

func TestNewWithLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithLevel(&buf, slog.LevelInfo)
	l.Debug("hidden debug")
	l.Info("request", "status", 201)
	assert.NotContains(t, buf.String(), "hidden debug")
	assert.Contains(t, buf.String(), "status=201")
}

func TestDiscard(t *testing.T) {
	l := Discard()
	assert.False(t, l.Enabled(t.Context(), slog.LevelError))
}
