package project

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
)

// DeleteCmd returns the project delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <project>",
		Short: "Delete a project",
		Long:  "Delete a project and its board (requires confirmation unless --force or --quiet).",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}

	// Optional flags
	cmd.Flags().Bool("force", false, "Skip confirmation")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	formatter := cli.FormatterFor(cmd)
	force, _ := cmd.Flags().GetBool("force")

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return cli.Report(formatter, err)
	}
	ctx := cmd.Context()

	// Get project details for confirmation
	p, err := cliInstance.App.Projects.Find(ctx, args[0])
	if err != nil {
		return cli.Report(formatter, err)
	}

	// Ask for confirmation unless force or quiet mode
	if !force && !formatter.Quiet {
		question := fmt.Sprintf("Delete project '%s' and all of its tasks?", p.Name)
		if !cli.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), question) {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
			return nil
		}
	}

	if err := cliInstance.App.Projects.Delete(ctx, p.ID); err != nil {
		return cli.Report(formatter, err)
	}

	return formatter.Success(p, fmt.Sprintf("Project '%s' deleted", p.Name))
}
