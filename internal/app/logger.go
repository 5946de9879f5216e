package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/moodjournal-backend/internal/config"
)

const serviceName = "moodjournal"

// redactedKeys never reach the log output verbatim.
var redactedKeys = map[string]struct{}{
	"password":      {},
	"token":         {},
	"secret":        {},
	"authorization": {},
	"cookie":        {},
	"api_key":       {},
}

// NewLogger builds the process logger on stderr and installs it as the
// slog default. Format "json" is for production; anything else is text
// with source locations. Level defaults to info.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	isJSON := strings.EqualFold(cfg.Format, "json")
	opts := &slog.HandlerOptions{
		Level:       parseLevel(cfg.Level),
		AddSource:   !isJSON,
		ReplaceAttr: redact,
	}

	var handler slog.Handler
	if isJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler).With(slog.String("service", serviceName))
}

func redact(_ []string, a slog.Attr) slog.Attr {
	if _, ok := redactedKeys[strings.ToLower(a.Key)]; ok {
		return slog.String(a.Key, "[REDACTED]")
	}
	return a
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
