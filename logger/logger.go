// Package logger provides a minimal pluggable logging hook for the module.
//
// The module never writes to any log destination itself. Callers inject a
// single [LogFunc] that receives every message with its level; the default
// is a no-op, so the pure reconstruction engine stays silent unless a
// consumer asks otherwise.
package logger

// LogLevel represents log severity
type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	ErrorLevel LogLevel = "error"
)

// LogFunc is a single logger function that handles all levels
type LogFunc func(level LogLevel, msg string, keyvals ...interface{})

var logFunc LogFunc = func(level LogLevel, msg string, keyvals ...interface{}) {
}

// SetLogger sets the global logger function
func SetLogger(f LogFunc) {
	if f != nil {
		logFunc = f
	}
}

// Debug logs a message at debug level
func Debug(msg string, keyvals ...interface{}) {
	logFunc(DebugLevel, msg, keyvals...)
}

// Error logs a message at error level
func Error(msg string, keyvals ...interface{}) {
	logFunc(ErrorLevel, msg, keyvals...)
}
