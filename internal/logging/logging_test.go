package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"DEBUG", zerolog.DebugLevel},
		{" info ", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"trace", zerolog.TraceLevel},
		{"off", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"loud", zerolog.InfoLevel},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseLevel(tc.in))
		})
	}
}

func TestNewPlainFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewPlain(&buf, "warn")

	log.Info().Msg("hidden")
	log.Warn().Str("body", "Terra").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "body=Terra")
	assert.NotContains(t, out, "\x1b[", "plain logger must not emit color codes")
}

func TestNewUsesLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "debug")

	assert.Equal(t, zerolog.DebugLevel, log.GetLevel())
	log.Debug().Msg("frame")
	assert.Contains(t, buf.String(), "frame")
}

func TestForWriterPlainWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	log := ForWriter(&buf, "info")
	log.Info().Str("model", "ship.obj").Msg("loaded")
	assert.Contains(t, buf.String(), "model=ship.obj")
	assert.NotContains(t, buf.String(), "\x1b[")

	f, err := os.Create(filepath.Join(t.TempDir(), "run.log"))
	require.NoError(t, err)
	defer f.Close()

	log = ForWriter(f, "debug")
	assert.Equal(t, zerolog.DebugLevel, log.GetLevel())
	log.Info().Msg("saved")

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), "saved")
	assert.NotContains(t, string(data), "\x1b[", "log files must not carry color codes")
}
