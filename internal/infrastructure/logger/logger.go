package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logger configuration.
type Config struct {
	Level  string // debug, info, warn, error
	Format string // json, console
}

// ContextKey is the type for context keys.
type ContextKey string

const (
	// RequestIDKey is the context key for request IDs.
	RequestIDKey ContextKey = "request_id"
	// ActorIDKey is the context key for the acting user or system.
	ActorIDKey ContextKey = "actor_id"
)

// New creates a new zerolog logger writing to stdout.
func New(cfg Config) zerolog.Logger {
	return NewWithWriter(cfg, os.Stdout)
}

// NewWithWriter creates a logger writing to w.
func NewWithWriter(cfg Config, w io.Writer) zerolog.Logger {
	output := w

	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(output).
		Level(parseLevel(cfg.Level)).
		With().
		Timestamp().
		Caller().
		Logger()
}

// WithContext attaches the logger, enriched with the request id and actor
// found in ctx, to the returned context.
func WithContext(ctx context.Context, l zerolog.Logger) context.Context {
	c := l.With()
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok && requestID != "" {
		c = c.Str("request_id", requestID)
	}
	if actor, ok := ctx.Value(ActorIDKey).(string); ok && actor != "" {
		c = c.Str("actor_id", actor)
	}
	enriched := c.Logger()
	return enriched.WithContext(ctx)
}

// FromContext returns the logger attached to ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// ActorFromContext returns the actor stored in ctx.
func ActorFromContext(ctx context.Context) string {
	actor, _ := ctx.Value(ActorIDKey).(string)
	return actor
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
