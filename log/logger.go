// Package log forwards guest log lines to the gojinn host.
//
// Logging is fire and forget: nothing is returned and nothing can fail from the
// caller's point of view. The host handles malformed or oversized messages.
package log

import (
	"github.com/pauloappbr/gojinn-sdk/domain/ports"
	"github.com/pauloappbr/gojinn-sdk/infrastructure/wasm"
)

// Logger writes messages through a ports.LogHost.
type Logger struct {
	host ports.LogHost
}

// New creates a Logger for host.
func New(host ports.LogHost) *Logger {
	return &Logger{host: host}
}

// Debug logs at host level 0.
func (l *Logger) Debug(msg string) { l.host.Log(ports.LogLevelDebug, msg) }

// Info logs at host level 1.
func (l *Logger) Info(msg string) { l.host.Log(ports.LogLevelInfo, msg) }

// Warn logs at host level 2.
func (l *Logger) Warn(msg string) { l.host.Log(ports.LogLevelWarn, msg) }

// Error logs at host level 3.
func (l *Logger) Error(msg string) { l.host.Log(ports.LogLevelError, msg) }

var std = New(wasm.NewHost())

// Info logs msg on the default host at info level.
func Info(msg string) { std.Info(msg) }

// Error logs msg on the default host at error level.
func Error(msg string) { std.Error(msg) }

// Debug logs msg on the default host at debug level.
func Debug(msg string) { std.Debug(msg) }

// Warn logs msg on the default host at warn level.
func Warn(msg string) { std.Warn(msg) }
