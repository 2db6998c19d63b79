package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/polkiloo/storeadmin/internal/config"
)

const serviceName = "storeadmin"

// New creates the service logger writing JSON to stdout at the configured level.
func New(cfg *config.Config) *slog.Logger {
	return newLogger(os.Stdout, cfg.LogLevel)
}

func newLogger(w io.Writer, level string) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	return slog.New(handler).With(slog.String("service", serviceName))
}

// ParseLevel maps a level name to slog.Level. Unknown names yield INFO.
func ParseLevel(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo
	}
	return level
}
