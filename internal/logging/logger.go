package logging

import (
	"log/slog"
	"os"
)

// Setup initializes the global slog logger with JSON output to stdout.
func Setup() {
	slog.SetDefault(slog.New(StdoutHandler()))
}

func StdoutHandler() slog.Handler {
	return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
}

// AttachDB routes ERROR+ records to h in addition to stdout.
func AttachDB(h *DBHandler) {
	slog.SetDefault(slog.New(NewMultiHandler(StdoutHandler(), h)))
}
