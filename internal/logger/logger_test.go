package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	testCases := []struct {
		name        string
		level       string
		format      string
		expected    zapcore.Level
		expectError bool
	}{
		{name: "Console debug", level: "debug", format: "console", expected: zapcore.DebugLevel},
		{name: "JSON warn", level: "warn", format: "json", expected: zapcore.WarnLevel},
		{name: "Empty level means info", level: "", format: "console", expected: zapcore.InfoLevel},
		{name: "Unknown level", level: "loud", format: "console", expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			log, err := NewLogger(tc.level, tc.format)

			if tc.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.True(t, log.Core().Enabled(tc.expected))
			assert.False(t, log.Core().Enabled(tc.expected-1))
		})
	}
}
