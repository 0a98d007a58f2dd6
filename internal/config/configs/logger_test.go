package configs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := Logger{Level: "WARN", Format: "Json"}.NewLogger(&buf)

	logger.Info("dropped")
	logger.Warn("kept", slog.String("order_id", "ORD-1"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, "ORD-1", rec["order_id"])
}

func TestLoggerFallbacks(t *testing.T) {
	c := Logger{Level: "verbose", Format: "xml"}
	assert.Equal(t, slog.LevelInfo, c.SlogLevel())
	assert.Equal(t, "text", c.SlogFormat())
}
