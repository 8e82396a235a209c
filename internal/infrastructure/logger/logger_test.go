package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"unknown", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.input), tt.input)
	}
}

func TestNewWithWriter(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewWithWriter(Config{Level: "info", Format: "json"}, &buf)
		l.Debug().Msg("hidden")
		l.Info().Str("branch_id", "B1").Msg("day closed")

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 1)

		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
		assert.Equal(t, "day closed", entry["message"])
		assert.Equal(t, "B1", entry["branch_id"])
		assert.Contains(t, entry, "time")
	})

	t.Run("console", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewWithWriter(Config{Level: "debug", Format: "console"}, &buf)
		l.Debug().Msg("resolving rule")
		assert.Contains(t, buf.String(), "resolving rule")
		assert.False(t, json.Valid(buf.Bytes()))
	})
}

func TestWithContext(t *testing.T) {
	var buf bytes.Buffer
	base := NewWithWriter(Config{Level: "info", Format: "json"}, &buf)

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-1")
	ctx = context.WithValue(ctx, ActorIDKey, "teller-7")
	ctx = WithContext(ctx, base)

	FromContext(ctx).Info().Msg("posted")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "teller-7", entry["actor_id"])
	assert.Equal(t, "teller-7", ActorFromContext(ctx))
}

func TestFromContextWithoutLogger(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
	l.Info().Msg("dropped")
	assert.Empty(t, ActorFromContext(context.Background()))
}
