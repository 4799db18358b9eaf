package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/documenso/singleplayer/internal/config"
)

func TestNewWithWriterJSON(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Environment = "staging"

	var buf bytes.Buffer
	log := NewWithWriter(cfg, &buf)

	log.Debug().Msg("hidden")
	log.Info().Str("document_name", "lease.pdf").Msg("validated")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))

	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "validated", entry["message"])
	assert.Equal(t, config.ServiceName, entry["service"])
	assert.Equal(t, "staging", entry["environment"])
	assert.Equal(t, "lease.pdf", entry["document_name"])
}

func TestNewWithWriterConsole(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Logging.Format = "console"
	cfg.Logging.Level = "warn"

	var buf bytes.Buffer
	log := NewWithWriter(cfg, &buf)

	log.Info().Msg("quiet")
	log.Warn().Msg("loud")

	out := buf.String()
	assert.NotContains(t, out, "quiet")
	assert.Contains(t, out, "loud")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}
