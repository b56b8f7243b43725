//go:build !integration

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantLevel zerolog.Level
	}{
		{name: "debug level", level: "debug", wantLevel: zerolog.DebugLevel},
		{name: "info level", level: "info", wantLevel: zerolog.InfoLevel},
		{name: "warn level", level: "warn", wantLevel: zerolog.WarnLevel},
		{name: "error level", level: "error", wantLevel: zerolog.ErrorLevel},
		{name: "upper case", level: "DEBUG", wantLevel: zerolog.DebugLevel},
		{name: "empty defaults to info", level: "", wantLevel: zerolog.InfoLevel},
		{name: "invalid defaults to info", level: "loud", wantLevel: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.level, false)
			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
		})
	}
	Init("info", false)
}

func TestInitWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("info", false, &buf)
	defer Init("info", false)

	l := Logger()
	l.Info().Str("order_id", "o-1").Msg("exported")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "exported", entry["message"])
	assert.Equal(t, "o-1", entry["order_id"])
	assert.Contains(t, entry, "time")
}

func TestInitWithWriter_Pretty(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("info", true, &buf)
	defer Init("info", false)

	l := Logger()
	l.Info().Msg("hello")

	assert.Contains(t, buf.String(), "hello")
	assert.False(t, json.Valid(buf.Bytes()))
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("info", false, &buf)
	defer Init("info", false)

	l := WithFields(map[string]interface{}{"component": "export"})
	l.Info().Msg("ready")

	assert.Contains(t, buf.String(), `"component":"export"`)
}

func TestContextWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("info", false, &buf)
	defer Init("info", false)

	ctx := ContextWithRequestID(context.Background(), "req-42")

	assert.Equal(t, "req-42", RequestIDFromContext(ctx))
	FromContext(ctx).Info().Msg("tagged")
	assert.Contains(t, buf.String(), `"request_id":"req-42"`)
}

func TestFromContext_FallsBackToGlobal(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))
	assert.Empty(t, RequestIDFromContext(context.Background()))
}
