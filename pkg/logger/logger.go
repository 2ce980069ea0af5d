// Package logger provides a pluggable logging hook. The application core
// stays silent by default; embedders install a single function that receives
// every message with its level and key/value context.
package logger

// Level represents log severity.
type Level string

const (
	DebugLevel Level = "debug"
	InfoLevel  Level = "info"
	ErrorLevel Level = "error"
)

// LogFunc is a single logger function that handles all levels.
type LogFunc func(level Level, msg string, keyvals ...interface{})

var logFunc LogFunc = func(level Level, msg string, keyvals ...interface{}) {
}

// SetLogger sets the global logger function.
func SetLogger(f LogFunc) {
	if f != nil {
		logFunc = f
	}
}

// Debug logs a message at debug level.
func Debug(msg string, keyvals ...interface{}) {
	logFunc(DebugLevel, msg, keyvals...)
}

// Info logs a message at info level.
func Info(msg string, keyvals ...interface{}) {
	logFunc(InfoLevel, msg, keyvals...)
}

// Error logs a message at error level.
func Error(msg string, keyvals ...interface{}) {
	logFunc(ErrorLevel, msg, keyvals...)
}
