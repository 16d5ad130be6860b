// Package logger provides logging functionality for the xcfonts application.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...interface{})
}

// Syncer is implemented by loggers that may buffer output.
type Syncer interface {
	// Sync flushes buffered log entries.
	Sync() error
}

// Sync flushes l if it buffers output, and does nothing otherwise.
func Sync(l Logger) error {
	if s, ok := l.(Syncer); ok {
		return s.Sync()
	}
	return nil
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// defaultLogger is a thread-safe logger that writes plain lines to a writer.
type defaultLogger struct {
	mu  sync.Mutex
	out io.Writer
}

// NewDefaultLogger creates a new default logger writing to stdout.
func NewDefaultLogger() Logger {
	return NewWriterLogger(os.Stdout)
}

// NewWriterLogger creates a default logger writing to w.
func NewWriterLogger(w io.Writer) Logger {
	return &defaultLogger{out: w}
}

// Logf writes a formatted message with thread safety.
func (d *defaultLogger) Logf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, _ = fmt.Fprintf(d.out, format+"\n", args...)
}

// verboseLogger forwards messages to a zap sugared logger at debug level.
type verboseLogger struct {
	sugar *zap.SugaredLogger
}

// NewVerboseLogger creates a logger printing debug output to stderr with a console encoder.
func NewVerboseLogger() Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.DisableStacktrace = true

	l, err := cfg.Build()
	if err != nil {
		return NewWriterLogger(os.Stderr)
	}
	return NewZapLogger(l)
}

// NewZapLogger wraps an existing zap logger.
func NewZapLogger(l *zap.Logger) Logger {
	return &verboseLogger{sugar: l.Sugar()}
}

// Logf logs the formatted message at debug level.
func (v *verboseLogger) Logf(format string, args ...interface{}) {
	v.sugar.Debugf(format, args...)
}

// Sync flushes the underlying zap core.
func (v *verboseLogger) Sync() error {
	return v.sugar.Sync()
}
