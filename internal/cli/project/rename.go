package project

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
)

// RenameCmd returns the project rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <project> <new-title>",
		Short: "Rename a project",
		Args:  cobra.ExactArgs(2),
		RunE:  runRename,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runRename(cmd *cobra.Command, args []string) error {
	formatter := cli.FormatterFor(cmd)

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return cli.Report(formatter, err)
	}
	ctx := cmd.Context()

	p, err := cliInstance.App.Projects.Find(ctx, args[0])
	if err != nil {
		return cli.Report(formatter, err)
	}
	renamed, err := cliInstance.App.Projects.Rename(ctx, p.ID, args[1])
	if err != nil {
		return cli.Report(formatter, err)
	}

	return formatter.Success(renamed, fmt.Sprintf("Project renamed to '%s'", renamed.Name))
}
