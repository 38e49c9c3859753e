// Package logger provides a global, Sugared Zap logger. It supports
// configuring the log level via functional options, emits JSON logs to stdout,
// forwards them to OpenTelemetry when a LoggerProvider is available, and
// correlates every entry with the span found in the context.
package logger

import (
	"context"
	"os"
	"sync"

	"github.com/gabapcia/walletsync/internal/pkg/telemetry"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	otellog "go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// logger is the global SugaredLogger instance. Until Init runs it discards
	// every entry, so packages can log from tests without any setup.
	logger = zap.NewNop().Sugar()

	// initOnce ensures the logger is only configured a single time.
	initOnce sync.Once
)

// config holds configuration options for the logger.
type config struct {
	level    string // the minimum log level (debug, info, warn, error, panic, fatal)
	provider otellog.LoggerProvider
}

// Option configures the logger before initialization.
type Option func(*config)

// WithLevel sets the minimum log level for the global logger.
// Example levels: "debug", "info", "warn", "error", "panic", "fatal".
func WithLevel(l string) Option {
	return func(c *config) {
		c.level = l
	}
}

// WithLoggerProvider sets the OpenTelemetry provider entries are forwarded to.
// It defaults to telemetry.LoggerProvider(), so telemetry.Init must run first.
func WithLoggerProvider(lp otellog.LoggerProvider) Option {
	return func(c *config) {
		c.provider = lp
	}
}

// Init configures the global logger. By default it logs JSON to stdout at the
// "info" level, teeing into an OTEL bridge core when a LoggerProvider is set.
// Calling Init multiple times has no effect after the first successful
// initialization.
//
// Returns an error if parsing the log level fails.
func Init(opts ...Option) error {
	cfg := config{level: "info", provider: telemetry.LoggerProvider()}
	for _, opt := range opts {
		opt(&cfg)
	}

	level, err := zapcore.ParseLevel(cfg.level)
	if err != nil {
		return err
	}

	initOnce.Do(func() {
		cores := []zapcore.Core{
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				level,
			),
		}

		if cfg.provider != nil {
			cores = append(cores, otelzap.NewCore("github.com/gabapcia/walletsync", otelzap.WithLoggerProvider(cfg.provider)))
		}

		logger = zap.New(zapcore.NewTee(cores...)).Sugar()
	})

	return nil
}

// Sync flushes any buffered log entries. It should be called on application
// shutdown to ensure all logs are written out.
func Sync() error {
	return logger.Sync()
}

// withTrace appends the trace and span identifiers carried by ctx, if any.
// The sugared calls do not hand ctx to the cores, so the stdout sink and the
// bridge both rely on these fields for correlation.
func withTrace(ctx context.Context, keysAndValues []any) []any {
	if ctx == nil {
		return keysAndValues
	}

	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return keysAndValues
	}

	return append(keysAndValues,
		"trace_id", sc.TraceID().String(),
		"span_id", sc.SpanID().String(),
	)
}

// Debug logs a debug-level message with optional key/value context.
func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Debugw(msg, withTrace(ctx, keysAndValues)...)
}

// Info logs an info-level message with optional key/value context.
func Info(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Infow(msg, withTrace(ctx, keysAndValues)...)
}

// Warn logs a warn-level message with optional key/value context.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Warnw(msg, withTrace(ctx, keysAndValues)...)
}

// Error logs an error-level message with optional key/value context.
func Error(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Errorw(msg, withTrace(ctx, keysAndValues)...)
}

// Fatal logs a fatal-level message (and then exits) with optional key/value context.
func Fatal(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Fatalw(msg, withTrace(ctx, keysAndValues)...)
}
