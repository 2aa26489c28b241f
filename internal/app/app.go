// Package app wires the storage, project and board services together.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/dnd"
	"github.com/thenoetrevino/tablero/internal/services/kanban"
	"github.com/thenoetrevino/tablero/internal/services/project"
	"github.com/thenoetrevino/tablero/internal/storage"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	Config *config.Config

	// Persistence layer
	db      *sql.DB
	Storage *storage.Bridge

	// Service layer (business logic)
	Projects project.Service

	logger   *slog.Logger
	clock    func() time.Time
	feedback dnd.Feedback
}

// New opens the database at cfg.Storage.Path and builds the services on it.
// This is the single entry point for creating the application container.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	o := appConfig{
		logger:   slog.Default(),
		clock:    time.Now,
		feedback: dnd.NopFeedback{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	if cfg == nil {
		cfg = config.Default()
	}

	db, err := database.InitDB(ctx, cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	bridge := storage.New(database.NewKVRepository(db), o.logger)
	return &App{
		Config:  cfg,
		db:      db,
		Storage: bridge,
		Projects: project.NewService(bridge,
			project.WithLogger(o.logger),
			project.WithClock(o.clock),
		),
		logger:   o.logger,
		clock:    o.clock,
		feedback: o.feedback,
	}, nil
}

// Board loads the active project's board.
func (a *App) Board(ctx context.Context) (*kanban.Service, error) {
	active, err := a.Projects.Active(ctx)
	if err != nil {
		return nil, err
	}
	return kanban.NewService(ctx, a.Storage, active.ID,
		kanban.WithLogger(a.logger),
		kanban.WithFeedback(a.feedback),
		kanban.WithCompletionColumn(a.Config.Board.CompletionColumn),
		kanban.WithRollbackOnInvalidRelease(a.Config.Drag.RollbackOnInvalidRelease),
	)
}

// Logger returns the logger the services were built with.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Clock returns the application time source.
func (a *App) Clock() func() time.Time {
	return a.clock
}

// Close releases the database.
func (a *App) Close() error {
	return a.db.Close()
}
