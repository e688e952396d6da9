package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWithWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, Config{Level: LevelInfo, Format: "json"})

	Debug("hidden")
	Info("calculated", "tdee", 2545)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "calculated", entry["msg"])
	assert.EqualValues(t, 2545, entry["tdee"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestWithContextAddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, Config{Level: LevelDebug, Format: "text"})

	ctx := context.WithValue(context.Background(), RequestIDKey{}, "req-1")
	WithContext(ctx).Debug("scoped")

	assert.Contains(t, buf.String(), "request_id=req-1")
}

func TestLogLevelString(t *testing.T) {
	assert.Equal(t, "debug", LevelDebug.String())
	assert.Equal(t, "warn", LevelWarn.String())
	assert.Equal(t, "info", LogLevel(42).String())
}
