// Package cmd assembles the tablero command tree.
package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/backup"
	"github.com/thenoetrevino/tablero/internal/cli/project"
	"github.com/thenoetrevino/tablero/internal/launcher"
)

var rootCmd = &cobra.Command{
	Use:   "tablero",
	Short: "Tablero - A terminal-based kanban board",
	Long: `Tablero is a terminal-based kanban board with mouse drag and drop.

Run without a subcommand to open the board.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return launcher.Launch()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		c, err := cli.GetCLIFromContext(cmd.Context())
		if err != nil {
			return nil
		}
		return c.Close()
	},
}

func init() {
	// Assigned here rather than in the literal: needsStore refers to rootCmd.
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if !needsStore(cmd) {
			return nil
		}
		c, err := cli.NewCLI(cmd.Context())
		if err != nil {
			f := cli.FormatterFor(cmd)
			return f.Fail(cli.ExitError, "INITIALIZATION_ERROR", err)
		}
		cmd.SetContext(cli.SetCLIInContext(cmd.Context(), c))
		return nil
	}
	rootCmd.AddCommand(project.ProjectCmd())
	rootCmd.AddCommand(backup.ExportCmd())
	rootCmd.AddCommand(backup.ImportCmd())
	rootCmd.AddCommand(backup.ResetCmd())

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return cli.Exit(cli.ExitUsage, err)
	})
}

// needsStore reports whether cmd reads or writes the database. The board
// opens its own.
func needsStore(cmd *cobra.Command) bool {
	if cmd == rootCmd || !cmd.Runnable() {
		return false
	}
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion":
			return false
		}
	}
	return true
}

// Execute runs the command tree. Errors the commands have not reported yet
// are printed here.
func Execute() error {
	err := rootCmd.ExecuteContext(context.Background())
	var status *cli.ExitStatus
	if err != nil && (!errors.As(err, &status) || status.Code == cli.ExitUsage) {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}
