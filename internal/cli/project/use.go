package project

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
)

// UseCmd returns the project use subcommand
func UseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "use <project>",
		Short: "Make a project active",
		Long:  "Make a project active. The board opens on the active project.",
		Args:  cobra.ExactArgs(1),
		RunE:  runUse,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runUse(cmd *cobra.Command, args []string) error {
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
	if err := cliInstance.App.Projects.Select(ctx, p.ID); err != nil {
		return cli.Report(formatter, err)
	}

	return formatter.Success(p, fmt.Sprintf("Now using project '%s'", p.Name))
}
