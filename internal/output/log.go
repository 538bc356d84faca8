// Package output provides terminal output utilities.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// logger is the global diagnostics logger. It always writes to stderr so
// stdout stays with the launched program.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	Level:           log.InfoLevel,
	ReportTimestamp: false,
})

// LogConfig holds the options for SetupLogging.
type LogConfig struct {
	// Verbose enables debug diagnostics.
	Verbose bool

	// Writer overrides the destination. Defaults to os.Stderr.
	Writer io.Writer
}

// SetupLogging configures the global logger.
func SetupLogging(cfg LogConfig) {
	logger = NewLogger(cfg)
}

// NewLogger builds a logger without touching the global one.
func NewLogger(cfg LogConfig) *log.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}

	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "booter",
		ReportTimestamp: cfg.Verbose,
		TimeFormat:      "15:04:05",
	})
}

// Logger returns the global logger.
func Logger() *log.Logger {
	return logger
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...interface{}) {
	logger.Debug(msg, keyvals...)
}

// Info logs an info message.
func Info(msg string, keyvals ...interface{}) {
	logger.Info(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...interface{}) {
	logger.Warn(msg, keyvals...)
}

// Error logs an error message.
func Error(msg string, keyvals ...interface{}) {
	logger.Error(msg, keyvals...)
}
