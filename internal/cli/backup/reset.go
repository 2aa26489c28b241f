package backup

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
)

// ResetCmd returns the reset command
func ResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every project, board and preference",
		Long:  "Delete all stored data. The next start shows the sample board again.",
		Args:  cobra.NoArgs,
		RunE:  runReset,
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runReset(cmd *cobra.Command, args []string) error {
	formatter := cli.FormatterFor(cmd)
	force, _ := cmd.Flags().GetBool("force")

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return cli.Report(formatter, err)
	}

	if !force && !formatter.Quiet {
		if !cli.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Delete all projects and tasks?") {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
			return nil
		}
	}

	removed, err := cliInstance.App.Projects.Reset(cmd.Context())
	if err != nil {
		return cli.Report(formatter, err)
	}

	return formatter.Success(map[string]int64{"removed": removed}, fmt.Sprintf("Removed %d stored entries", removed))
}
