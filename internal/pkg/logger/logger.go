// Package logger provides a global, Sugared Zap logger that carries
// request-scoped fields through context.Context. Log lines emitted while an
// OpenTelemetry span is active are tagged with its trace and span ids, and
// are forwarded to an OpenTelemetry LoggerProvider when one is given.
package logger

import (
	"context"
	"os"
	"sync"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	otellog "go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ctxKeyType is the private type used to store a derived logger in a context.
type ctxKeyType struct{}

// ctxKey is the context key under which Derive stores its logger.
var ctxKey = ctxKeyType{}

var (
	// baseLogger is the global SugaredLogger instance. It is initialized once by Init.
	baseLogger *zap.SugaredLogger

	// initBaseLoggerOnce ensures the logger is only configured a single time.
	initBaseLoggerOnce sync.Once
)

type config struct {
	loggerProvider otellog.LoggerProvider
}

// Option configures the logger before initialization.
type Option func(*config)

// WithLoggerProvider adds an OTEL bridge core that forwards every entry to
// lp. A nil provider is ignored.
func WithLoggerProvider(lp otellog.LoggerProvider) Option {
	return func(c *config) {
		c.loggerProvider = lp
	}
}

// Init configures the global logger to emit JSON to stdout at the given level
// ("debug", "info", "warn", "error", "panic", "fatal"). Calling Init multiple
// times has no effect after the first successful initialization.
//
// Returns an error if parsing the log level fails.
func Init(level string, opts ...Option) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	initBaseLoggerOnce.Do(func() {
		cores := []zapcore.Core{
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				lvl,
			),
		}

		if cfg.loggerProvider != nil {
			cores = append(cores, otelzap.NewCore("github.com/gabapcia/txrelay", otelzap.WithLoggerProvider(cfg.loggerProvider)))
		}

		baseLogger = zap.New(zapcore.NewTee(cores...)).Sugar()
	})

	return nil
}

// Sync flushes any buffered log entries. It should be called on application
// shutdown to ensure all logs are written out.
func Sync() error {
	return baseLogger.Sync()
}

// deriveFromCtx returns the logger stored in ctx (or the base logger) enriched
// with the given key/value pairs and, when present, the active trace ids.
func deriveFromCtx(ctx context.Context, keysAndValues ...any) *zap.SugaredLogger {
	l, ok := ctx.Value(ctxKey).(*zap.SugaredLogger)
	if !ok || l == nil {
		l = baseLogger
	}

	// Packages may log before Init runs (e.g. in tests).
	if l == nil {
		l = zap.NewNop().Sugar()
	}

	if spanCtx := trace.SpanContextFromContext(ctx); spanCtx.IsValid() {
		keysAndValues = append(keysAndValues,
			"trace_id", spanCtx.TraceID().String(),
			"span_id", spanCtx.SpanID().String(),
		)
	}

	if len(keysAndValues) == 0 {
		return l
	}

	return l.With(keysAndValues...)
}

// Derive returns a child context whose logger carries the given key/value
// pairs on every subsequent log call made with it.
func Derive(ctx context.Context, keysAndValues ...any) context.Context {
	return context.WithValue(ctx, ctxKey, deriveFromCtx(ctx, keysAndValues...))
}

func log(ctx context.Context, level zapcore.Level, msg string, keysAndValues ...any) {
	deriveFromCtx(ctx).Logw(level, msg, keysAndValues...)
}

// Debug logs a debug-level message with optional key/value context.
func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.DebugLevel, msg, keysAndValues...)
}

// Info logs an info-level message with optional key/value context.
func Info(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.InfoLevel, msg, keysAndValues...)
}

// Warn logs a warn-level message with optional key/value context.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.WarnLevel, msg, keysAndValues...)
}

// Error logs an error-level message with optional key/value context.
func Error(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.ErrorLevel, msg, keysAndValues...)
}

// Panic logs a panic-level message (and then panics) with optional key/value context.
func Panic(ctx context.Context, msg string, keysAndValues ...any) {
	deriveFromCtx(ctx).Panicw(msg, keysAndValues...)
}

// Fatal logs a fatal-level message (and then exits) with optional key/value context.
func Fatal(ctx context.Context, msg string, keysAndValues ...any) {
	deriveFromCtx(ctx).Fatalw(msg, keysAndValues...)
}
