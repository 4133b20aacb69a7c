// Package logging configures the application-wide structured logger.
package logging

import (
	"log/slog"
	"os"
)

// Logger is the application-wide structured logger instance.
var Logger *slog.Logger

// InitLogger initializes the global logger with the specified level and format.
// level: "debug", "info", "warn", "error" (defaults to "info")
// format: "json" or "text" (defaults to "text")
func InitLogger(level, format string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	var handler slog.Handler
	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	if format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	Logger = slog.New(handler)
	slog.SetDefault(Logger)
}

// WithAccount returns a logger with account_id field.
func WithAccount(accountID string) *slog.Logger {
	return Logger.With("account_id", accountID)
}

// WithApplication returns a logger with application_id field.
func WithApplication(applicationID string) *slog.Logger {
	return Logger.With("application_id", applicationID)
}

// WithError returns a logger with error field.
func WithError(err error) *slog.Logger {
	return Logger.With("error", err)
}
