package logger

import (
	"log/slog"
	"os"
)

// New returns the process logger. JSON by default so log shippers can index
// fields; set REGISTRY_LOG_FORMAT=text for local runs.
func New() *slog.Logger {
	if os.Getenv("REGISTRY_LOG_FORMAT") == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, nil))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}
