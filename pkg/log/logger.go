package log

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// SetupLogger function setup logger.
func SetupLogger(loglevel string) {
	ops := slog.HandlerOptions{
		AddSource: true,
		Level:     ToLogLevel(loglevel),
		// Replace attributes to convert to CloudLogging format.
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.LevelKey:
				attr = slog.Attr{
					Key:   "severity",
					Value: attr.Value,
				}
			case slog.MessageKey:
				attr = slog.Attr{
					Key:   "message",
					Value: attr.Value,
				}
			case slog.SourceKey:
				attr = slog.Attr{
					Key:   "logging.googleapis.com/sourceLocation",
					Value: attr.Value,
				}
			}
			return attr
		},
	}
	handler := slog.NewJSONHandler(os.Stdout, &ops)
	errFmtHandler := WrapByErrFmtHandler(handler)
	slog.SetDefault(slog.New(errFmtHandler))
}

func ToLogLevel(level string) slog.Level {
	switch level {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		panic(fmt.Sprintf("invalid log level :%s", level))
	}
}

const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// ErrAttr is a wrapper to pass err to slog.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}

// ===========================================================================
//
//	Default provider
//
// ===========================================================================

var (
	providerMu      sync.RWMutex
	defaultProvider LoggerProvider = &slogProvider{level: LevelInfo}
)

// SetProvider replaces the package-level logger provider. Passing nil
// restores the default slog-backed provider.
func SetProvider(p LoggerProvider) {
	providerMu.Lock()
	defer providerMu.Unlock()
	if p == nil {
		p = &slogProvider{level: LevelInfo}
	}
	defaultProvider = p
}

// GetLogger returns the default logger from the installed provider.
func GetLogger() Logger {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return defaultProvider.GetLogger()
}

// GetLoggerWithName returns a named logger from the installed provider.
// The name identifies the component, e.g. "over_sampling.random".
func GetLoggerWithName(name string) Logger {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return defaultProvider.GetLoggerWithName(name)
}

// slogProvider is the default LoggerProvider backed by the process-wide
// slog default logger (configured via SetupLogger).
type slogProvider struct {
	mu    sync.RWMutex
	level Level
}

func (p *slogProvider) GetLogger() Logger {
	return &slogLogger{logger: slog.Default(), provider: p}
}

func (p *slogProvider) GetLoggerWithName(name string) Logger {
	return &slogLogger{logger: slog.Default().With(ComponentKey, name), provider: p}
}

func (p *slogProvider) SetLevel(level Level) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.level = level
}

func (p *slogProvider) minLevel() Level {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.level
}

// slogLogger adapts *slog.Logger to the Logger interface.
type slogLogger struct {
	logger   *slog.Logger
	provider *slogProvider
}

func (l *slogLogger) Debug(msg string, fields ...any) {
	if l.provider.minLevel() <= LevelDebug {
		l.logger.Debug(msg, fields...)
	}
}

func (l *slogLogger) Info(msg string, fields ...any) {
	if l.provider.minLevel() <= LevelInfo {
		l.logger.Info(msg, fields...)
	}
}

func (l *slogLogger) Warn(msg string, fields ...any) {
	if l.provider.minLevel() <= LevelWarn {
		l.logger.Warn(msg, fields...)
	}
}

func (l *slogLogger) Error(msg string, fields ...any) {
	if l.provider.minLevel() <= LevelError {
		l.logger.Error(msg, fields...)
	}
}

func (l *slogLogger) With(fields ...any) Logger {
	return &slogLogger{logger: l.logger.With(fields...), provider: l.provider}
}

func (l *slogLogger) Enabled(ctx context.Context, level Level) bool {
	return l.provider.minLevel() <= level && l.logger.Enabled(ctx, slog.Level(level))
}
