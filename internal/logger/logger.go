// Package logger provides the process-wide diagnostic logger. Diagnostics
// go to stderr so measurement output on stdout stays clean and pipeable.
package logger

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Logger is the shared logger instance.
var Logger *log.Logger

func init() {
	Logger = log.New(os.Stderr)
	Logger.SetLevel(log.InfoLevel)
}

// Configure sets the log level from the CLI flag, falling back to the
// CPUSTRESS_LOG_LEVEL environment variable, then to info.
func Configure(level string) {
	if level == "" {
		level = strings.ToLower(os.Getenv("CPUSTRESS_LOG_LEVEL"))
	}
	Logger.SetLevel(parseLevel(level))
}

func parseLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

// Convenience wrappers so call sites read like the stdlib logger.

func Debug(msg interface{}, keyvals ...interface{}) { Logger.Debug(msg, keyvals...) }
func Info(msg interface{}, keyvals ...interface{})  { Logger.Info(msg, keyvals...) }
func Warn(msg interface{}, keyvals ...interface{})  { Logger.Warn(msg, keyvals...) }
func Error(msg interface{}, keyvals ...interface{}) { Logger.Error(msg, keyvals...) }
