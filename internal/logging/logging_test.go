package logging

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestLoggerLevels(t *testing.T) {
	color.NoColor = true

	tests := []struct {
		name     string
		logger   Logger
		expected string
	}{
		{name: "quiet", logger: Logger{}, expected: "[warn] w\n[error] e\n"},
		{name: "verbose", logger: Logger{Verbose: true}, expected: "[info] i\n[warn] w\n[error] e\n"},
		{name: "debug", logger: Logger{Verbose: true, Debug: true}, expected: "[info] i\n[debug] d\n[warn] w\n[error] e\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := tt.logger
			l.Out = &buf

			l.Infof("i")
			l.Debugf("d")
			l.Warnf("w")
			l.Errorf("e")

			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestNewDebugImpliesVerbose(t *testing.T) {
	l := New(false, true)
	assert.True(t, l.Verbose)
	assert.True(t, l.Debug)
}

func TestNilLoggerIsSafe(t *testing.T) {
	var l *Logger
	assert.NotPanics(t, func() {
		l.Infof("x")
		l.Debugf("x")
	})
}
