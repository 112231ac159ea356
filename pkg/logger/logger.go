package logger

import (
	"log/slog"
	"os"
)

// Log is usable before Init so that library code can log during tests; Init
// replaces it with the configured production handler.
var Log = newLogger()

func Init() {
	Log = newLogger()
}

func newLogger() *slog.Logger {
	// JSON handler for production-ready logging
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
