// Package logging provides structured logging for go-invaders. Lines are
// JSON, the level comes from INVADERS_LOG_LEVEL and every line written with
// a session context carries that session's id, so one game run can be
// grepped out of a shared log file.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

const (
	// LevelEnvVar names the environment variable that selects the log level
	LevelEnvVar = "INVADERS_LOG_LEVEL"
	// SessionKey is the attribute holding the session id
	SessionKey = "session_id"
)

var levels = map[string]slog.Level{
	"DEBUG":   slog.LevelDebug,
	"INFO":    slog.LevelInfo,
	"WARN":    slog.LevelWarn,
	"WARNING": slog.LevelWarn,
	"ERROR":   slog.LevelError,
}

// ParseLevel maps a level name, in any case, to a slog level
func ParseLevel(name string) (slog.Level, bool) {
	level, ok := levels[strings.ToUpper(strings.TrimSpace(name))]
	return level, ok
}

// LevelFromEnv returns the level named by INVADERS_LOG_LEVEL, or INFO when
// it is unset or unknown.
func LevelFromEnv() slog.Level {
	if level, ok := ParseLevel(os.Getenv(LevelEnvVar)); ok {
		return level
	}
	return slog.LevelInfo
}

// Logger is a slog.Logger whose helpers take the context first
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger writing to stdout
func NewLogger() *Logger {
	return NewLoggerWithWriter(os.Stdout)
}

// NewLoggerWithWriter creates a Logger writing to w at the environment's
// level. The terminal frontend passes a file here so log lines stay off the
// screen it draws on.
func NewLoggerWithWriter(w io.Writer) *Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: LevelFromEnv()})
	return &Logger{slog.New(sessionHandler{handler})}
}

// NewNopLogger returns a Logger that drops everything
func NewNopLogger() *Logger {
	return &Logger{slog.New(slog.DiscardHandler)}
}

// Info logs at INFO
func (l *Logger) Info(ctx context.Context, msg string, args ...any) {
	l.InfoContext(ctx, msg, args...)
}

// Warn logs at WARN
func (l *Logger) Warn(ctx context.Context, msg string, args ...any) {
	l.WarnContext(ctx, msg, args...)
}

// Error logs at ERROR with err under the "error" key. A nil err is left out.
func (l *Logger) Error(ctx context.Context, msg string, err error, args ...any) {
	if err != nil {
		args = append(args, slog.Any("error", err))
	}
	l.ErrorContext(ctx, msg, args...)
}

// Debug logs at DEBUG
func (l *Logger) Debug(ctx context.Context, msg string, args ...any) {
	l.DebugContext(ctx, msg, args...)
}

// DebugEnabled reports whether debug lines would be written. Per-frame code
// checks it before building attributes.
func (l *Logger) DebugEnabled(ctx context.Context) bool {
	return l.Enabled(ctx, slog.LevelDebug)
}

// sessionHandler stamps records with the session id found in their context
type sessionHandler struct {
	slog.Handler
}

func (h sessionHandler) Handle(ctx context.Context, r slog.Record) error {
	if id := SessionID(ctx); id != "" {
		r.AddAttrs(slog.String(SessionKey, id))
	}
	return h.Handler.Handle(ctx, r)
}

func (h sessionHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return sessionHandler{h.Handler.WithAttrs(attrs)}
}

func (h sessionHandler) WithGroup(name string) slog.Handler {
	return sessionHandler{h.Handler.WithGroup(name)}
}

type sessionKey struct{}

// NewSessionID returns a fresh random session id
func NewSessionID() string {
	return uuid.NewString()
}

// WithSession returns ctx tagged with a session id
func WithSession(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionKey{}, id)
}

// SessionID returns the session id of ctx, or "" if there is none
func SessionID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(sessionKey{}).(string)
	return id
}

// WrapError prefixes err with the operation that failed. A nil err stays nil.
func WrapError(err error, op string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}
