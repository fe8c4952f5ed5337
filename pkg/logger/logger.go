package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/onesocial/cli/pkg/config"
)

var logger *log.Logger

// Init initializes the logger
func Init(verbose bool) {
	logLevel, err := log.ParseLevel(config.GetString("log.level"))
	if err != nil {
		logLevel = log.InfoLevel
	}
	if verbose {
		logLevel = log.DebugLevel
	}

	logFile := config.GetString("log.file")

	var w io.Writer = os.Stderr
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
		if err == nil {
			w = f
		}
	}

	InitWithWriter(w, logLevel)
}

// InitWithWriter points the logger at w. The TUI uses it to keep log
// lines off the alternate screen.
func InitWithWriter(w io.Writer, level log.Level) {
	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "onesocial",
	})
	logger.SetLevel(level)
}

// Debug logs a debug message
func Debug(msg string, args ...interface{}) {
	if logger != nil {
		logger.Debug(msg, args...)
	}
}

// Info logs an info message
func Info(msg string, args ...interface{}) {
	if logger != nil {
		logger.Info(msg, args...)
	}
}

// Warn logs a warning message
func Warn(msg string, args ...interface{}) {
	if logger != nil {
		logger.Warn(msg, args...)
	}
}

// Error logs an error message
func Error(msg string, args ...interface{}) {
	if logger != nil {
		logger.Error(msg, args...)
	}
}

// Fatal logs a fatal message and exits
func Fatal(msg string, args ...interface{}) {
	if logger != nil {
		logger.Fatal(msg, args...)
	} else {
		os.Exit(1)
	}
}

// With returns a child logger carrying the given key/value pairs.
func With(args ...interface{}) *log.Logger {
	if logger == nil {
		return log.New(io.Discard)
	}
	return logger.With(args...)
}

// GetLogger returns the logger instance
func GetLogger() *log.Logger {
	return logger
}
