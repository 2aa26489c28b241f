// Package cli runs cobra commands against a test application.
package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/app"
	tcli "github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/testutil"
)

// Result is the captured outcome of one command run.
type Result struct {
	Stdout string
	Stderr string
	Err    error
}

// SetupCLITest opens an in-memory application for command tests.
func SetupCLITest(t *testing.T) *app.App {
	t.Helper()
	return testutil.SetupTestApp(t)
}

// ExecuteCLICommand runs cmd with args against testApp, answering prompts
// with stdin.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, stdin string, args ...string) Result {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	ctx := context.Background()
	ctx = tcli.SetCLIInContext(ctx, tcli.NewCLIWithApp(ctx, testApp))

	// cobra falls back to os.Args when args is nil
	if args == nil {
		args = []string{}
	}

	var stdout, stderr bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(ctx)
	return Result{Stdout: stdout.String(), Stderr: stderr.String(), Err: err}
}
