// Package testutil holds helpers shared by the command tests.
package testutil

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/logging"
)

// SetupTestApp opens an application on an in-memory database.
func SetupTestApp(t *testing.T) *app.App {
	t.Helper()

	cfg := config.Default()
	cfg.Storage.Path = ":memory:"

	a, err := app.New(context.Background(), cfg, app.WithLogger(logging.Discard()))
	if err != nil {
		t.Fatalf("Failed to open test app: %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })
	return a
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}
