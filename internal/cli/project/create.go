package project

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
)

// CreateCmd returns the project create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new project",
		Long: `Create a new project with the default columns and make it active.

Examples:
  # Simple project (human-readable output)
  tablero project create --title="Backend API"

  # Quiet mode for bash capture
  PROJECT_ID=$(tablero project create --title="Backend API" --quiet)
`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	// A blank title falls back to "Untitled Project".
	cmd.Flags().String("title", "", "Project title")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	formatter := cli.FormatterFor(cmd)
	title, _ := cmd.Flags().GetString("title")

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return cli.Report(formatter, err)
	}

	p, err := cliInstance.App.Projects.Create(cmd.Context(), title)
	if err != nil {
		return cli.Report(formatter, err)
	}

	return formatter.Success(p, fmt.Sprintf("Project '%s' created (%s)", p.Name, p.ID))
}
