package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, false)

	l.Info("started")
	l.Warn("careful")
	l.Error("broken")
	l.Debug("hidden")
	l.Debugf("hidden %d", 1)

	out := buf.String()
	assert.Contains(t, out, "[INFO] ")
	assert.Contains(t, out, "started")
	assert.Contains(t, out, "[WARN] ")
	assert.Contains(t, out, "[ERROR] ")
	assert.NotContains(t, out, "hidden")
}

func TestLoggerDebugMode(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, true)

	l.Debugf("merged %d runs", 3)
	assert.Contains(t, buf.String(), "[DEBUG] ")
	assert.Contains(t, buf.String(), "merged 3 runs")
}

func TestLoggerNilWriter(t *testing.T) {
	l := NewLogger(nil, true)
	assert.NotPanics(t, func() {
		l.Info("dropped")
		l.Debugf("dropped %s", "too")
	})
	assert.NotPanics(t, func() { Discard().Error("dropped") })
}
