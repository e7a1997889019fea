package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects level and encoding of a root logger
type Options struct {
	Level  string // debug, info, warn, error; default info
	Format string // json or console; default json
}

// Logger is a key/value structured logger backed by zap
type Logger struct {
	s *zap.SugaredLogger
}

// New builds a root logger writing to stderr
func New(opts Options) *Logger {
	cfg := zap.NewProductionConfig()
	if strings.EqualFold(strings.TrimSpace(opts.Format), "console") {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(ParseLevel(opts.Level))
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	z, err := cfg.Build()
	if err != nil {
		z = zap.NewExample()
	}

	return &Logger{s: z.Sugar()}
}

// FromZap wraps an existing zap logger, e.g. one writing to an observer core in tests
func FromZap(z *zap.Logger) *Logger {
	if z == nil {
		z = zap.NewNop()
	}
	return &Logger{s: z.Sugar()}
}

// NewNop returns a logger that discards everything
func NewNop() *Logger {
	return &Logger{s: zap.NewNop().Sugar()}
}

// OrNop returns l, or a discarding logger when l is nil
func OrNop(l *Logger) *Logger {
	if l == nil {
		return NewNop()
	}
	return l
}

// Named scopes entries to a component, e.g. "job" or "interview"
func (l *Logger) Named(component string) *Logger {
	return &Logger{s: l.s.Named(component)}
}

func (l *Logger) With(keyvals ...any) *Logger {
	return &Logger{s: l.s.With(keyvals...)}
}

func (l *Logger) Debug(msg string, keyvals ...any) { l.s.Debugw(msg, keyvals...) }
func (l *Logger) Info(msg string, keyvals ...any)  { l.s.Infow(msg, keyvals...) }
func (l *Logger) Warn(msg string, keyvals ...any)  { l.s.Warnw(msg, keyvals...) }
func (l *Logger) Error(msg string, keyvals ...any) { l.s.Errorw(msg, keyvals...) }

// Sync flushes buffered entries. Errors from syncing a terminal are ignored.
func (l *Logger) Sync() error {
	if err := l.s.Sync(); err != nil && !strings.Contains(err.Error(), "inappropriate ioctl") && !strings.Contains(err.Error(), "invalid argument") {
		return err
	}
	return nil
}

// ParseLevel maps LOG_LEVEL values onto zap levels, defaulting to info
func ParseLevel(level string) zapcore.Level {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(level)))); err != nil {
		if strings.EqualFold(strings.TrimSpace(level), "warning") {
			return zapcore.WarnLevel
		}
		return zapcore.InfoLevel
	}
	return lvl
}
