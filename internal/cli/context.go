package cli

import (
	"context"
	"errors"
)

type contextKey struct{}

// ErrNoCLI is returned when a command runs without an opened CLI.
var ErrNoCLI = errors.New("cli not initialized")

// SetCLIInContext stores c for the subcommands.
func SetCLIInContext(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// GetCLIFromContext returns the CLI opened by the root command.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		return nil, ErrNoCLI
	}
	c, ok := ctx.Value(contextKey{}).(*CLI)
	if !ok || c == nil {
		return nil, ErrNoCLI
	}
	return c, nil
}
