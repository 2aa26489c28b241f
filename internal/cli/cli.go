package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/logging"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config
	ctx    context.Context
}

// NewCLI loads the configuration and opens the database. Commands log
// nowhere: the terminal output is their result.
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	application, err := app.New(ctx, cfg, app.WithLogger(logging.Discard()))
	if err != nil {
		return nil, err
	}

	return &CLI{
		App:    application,
		Config: cfg,
		ctx:    ctx,
	}, nil
}

// Context returns the context the CLI was opened with.
func (c *CLI) Context() context.Context {
	return c.ctx
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	return c.App.Close()
}

// NewCLIWithApp wraps an already opened application.
func NewCLIWithApp(ctx context.Context, application *app.App) *CLI {
	return &CLI{
		App:    application,
		Config: application.Config,
		ctx:    ctx,
	}
}
