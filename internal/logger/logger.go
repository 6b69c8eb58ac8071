package logger

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	// SessionKeyContextKey holds the active event session key on a request context
	SessionKeyContextKey contextKey = "session_key"
	// RequestIDContextKey holds the request correlation ID
	RequestIDContextKey contextKey = "request_id"
)

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// Configure sets the global log level and formatter. Unknown levels fall back to info.
func Configure(level string, json bool) {
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
	if json {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

// WithSession returns a copy of ctx carrying the session key for log enrichment
func WithSession(ctx context.Context, sessionKey string) context.Context {
	return context.WithValue(ctx, SessionKeyContextKey, sessionKey)
}

// WithRequestID returns a copy of ctx carrying the request ID
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDContextKey, requestID)
}

// WithContext creates a logger with session and request information
func WithContext(ctx context.Context) *Logger {
	logger := New()

	if key, ok := ctx.Value(SessionKeyContextKey).(string); ok && key != "" {
		logger.Entry = logger.Entry.WithField("session", key)
	}
	if id, ok := ctx.Value(RequestIDContextKey).(string); ok && id != "" {
		logger.Entry = logger.Entry.WithField("request_id", id)
	}

	return logger
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}

// WithError attaches an error to the logger
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Entry: l.Entry.WithError(err),
	}
}
