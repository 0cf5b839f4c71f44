package utils

import (
	"log/slog"
	"os"
	"strings"
)

// NewLogger builds the process logger and installs it as the slog default.
// Format "json" is meant for production, anything else prints text with source.
func NewLogger(level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(level),
		AddSource: !strings.EqualFold(format, "json"),
	}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LogEvent prints standardized log line with module/action/request_id.
// Avoid logging sensitive payload; message should be summarized.
func LogEvent(requestID, module, action, message string) {
	slog.Info(message,
		slog.String("module", strings.ToUpper(module)),
		slog.String("action", action),
		slog.String("request_id", strings.TrimSpace(requestID)),
	)
}

// LogFailure is LogEvent at error level.
func LogFailure(requestID, module, action string, err error) {
	slog.Error(action+" failed",
		slog.String("module", strings.ToUpper(module)),
		slog.String("action", action),
		slog.String("request_id", strings.TrimSpace(requestID)),
		slog.String("error", err.Error()),
	)
}
