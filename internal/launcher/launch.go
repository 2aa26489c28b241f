// Package launcher starts the interactive board.
package launcher

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/effects"
	"github.com/thenoetrevino/tablero/internal/logging"
	"github.com/thenoetrevino/tablero/internal/tui"
)

// Launch starts the TUI application
func Launch() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logging to file before anything else touches the terminal
	logFile, err := logging.Init(cfg.Log.SlogLevel())
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() { _ = logFile.Close() }()

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	return Run(ctx, cfg, os.Stdout)
}

// Run opens the application and runs the board until the user quits or ctx
// is cancelled. Haptic pulses are written to out.
func Run(ctx context.Context, cfg *config.Config, out io.Writer) error {
	haptics := effects.NewHaptics(out, cfg.Board.HapticsEnabled(), slog.Default())
	application, err := app.New(ctx, cfg,
		app.WithLogger(slog.Default()),
		app.WithFeedback(haptics),
	)
	if err != nil {
		return err
	}

	// database cleanup
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	initCtx, initCancel := context.WithTimeout(ctx, 5*time.Second)
	defer initCancel()
	board, err := application.Board(initCtx)
	if err != nil {
		return fmt.Errorf("failed to load board: %w", err)
	}

	model := tui.InitialModel(ctx, tui.Deps{
		Board:    board,
		Projects: application.Projects,
		Themes:   application.Storage,
		Config:   cfg,
		Logger:   application.Logger(),
		Clock:    application.Clock(),
	})
	p := tea.NewProgram(model, tea.WithContext(ctx))

	// goroutine to monitor cancellation
	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	// Wait for program completion or cancellation
	select {
	case err := <-errChan:
		if err != nil && ctx.Err() == nil {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up")
		// Let the program restore the terminal before the db closes
		select {
		case <-errChan:
		case <-time.After(2 * time.Second):
		}
	}

	return nil
}
