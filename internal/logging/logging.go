package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// DefaultDir returns ~/.tablero/logs.
func DefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".tablero", "logs"), nil
}

// Init initializes the logging system, writing logs to ~/.tablero/logs/tablero.log
// Uses text format for human readability.
func Init(level slog.Level) (io.Closer, error) {
	logDir, err := DefaultDir()
	if err != nil {
		return nil, err
	}
	return InitFile(filepath.Join(logDir, "tablero.log"), level)
}

// InitFile is Init with an explicit log file path. The returned closer
// releases the file.
func InitFile(path string, level slog.Level) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	// Open log file in append mode
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	Logger = New(file, level)
	slog.SetDefault(Logger)

	// Redirect standard log package output to the same file
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return file, nil
}

// New builds a text logger on w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops everything. Used by tests and by
// commands that run before logging is configured.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
