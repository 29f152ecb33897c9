package logger

import (
	"log/slog"
	"os"
)

// New returns the structured logger used by the callback receiver.
func New() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}
