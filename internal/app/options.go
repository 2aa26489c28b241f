package app

import (
	"log/slog"
	"time"

	"github.com/thenoetrevino/tablero/internal/dnd"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger   *slog.Logger
	clock    func() time.Time
	feedback dnd.Feedback
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithClock overrides the time source used for timestamps and themes.
func WithClock(now func() time.Time) Option {
	return func(cfg *appConfig) {
		cfg.clock = now
	}
}

// WithFeedback sets the sink for drag haptics and celebrations.
func WithFeedback(f dnd.Feedback) Option {
	return func(cfg *appConfig) {
		if f != nil {
			cfg.feedback = f
		}
	}
}
