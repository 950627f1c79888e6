package log

import (
	"context"

	saltLog "github.com/goto/salt/log"
)

// Logger writes leveled lines with alternating key/value pairs. Values stored in ctx under one of the
// logger's keys are appended to every line.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
	Fatal(ctx context.Context, msg string, args ...interface{})
	Level() string
}

// ContextKey is the type of context keys picked up by CtxLogger.
type ContextKey string

// WithValue stores value under key for loggers configured with key.
func WithValue(ctx context.Context, key, value string) context.Context {
	return context.WithValue(ctx, ContextKey(key), value)
}

type CtxLogger struct {
	log  saltLog.Logger
	keys []string
}

func NewCtxLoggerWithSaltLogger(log saltLog.Logger, ctxKeys []string) *CtxLogger {
	return &CtxLogger{log: log, keys: ctxKeys}
}

// NewCtxLogger returns a logrus backed logger filtering below logLevel.
func NewCtxLogger(logLevel string, ctxKeys []string) *CtxLogger {
	return NewCtxLoggerWithSaltLogger(saltLog.NewLogrus(saltLog.LogrusWithLevel(logLevel)), ctxKeys)
}

func (l *CtxLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.log.Debug(msg, l.withContext(ctx, args)...)
}

func (l *CtxLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.log.Info(msg, l.withContext(ctx, args)...)
}

func (l *CtxLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.log.Warn(msg, l.withContext(ctx, args)...)
}

func (l *CtxLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.log.Error(msg, l.withContext(ctx, args)...)
}

func (l *CtxLogger) Fatal(ctx context.Context, msg string, args ...interface{}) {
	l.log.Fatal(msg, l.withContext(ctx, args)...)
}

func (l *CtxLogger) Level() string {
	return l.log.Level()
}

func (l *CtxLogger) withContext(ctx context.Context, args []interface{}) []interface{} {
	if ctx == nil {
		return args
	}
	for _, key := range l.keys {
		if val, ok := ctx.Value(ContextKey(key)).(string); ok {
			args = append(args, key, val)
		}
	}
	return args
}
