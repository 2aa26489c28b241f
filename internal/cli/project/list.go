package project

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/styles"
	"github.com/thenoetrevino/tablero/internal/models"
)

// ListCmd returns the project list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all projects",
		Long:  "List all projects. The active project is marked with ●.",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

type listEntry struct {
	models.Project
	Active bool `json:"active"`
}

func runList(cmd *cobra.Command, args []string) error {
	formatter := cli.FormatterFor(cmd)

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return cli.Report(formatter, err)
	}
	ctx := cmd.Context()

	projects, err := cliInstance.App.Projects.List(ctx)
	if err != nil {
		return cli.Report(formatter, err)
	}
	active, err := cliInstance.App.Projects.Active(ctx)
	if err != nil {
		return cli.Report(formatter, err)
	}

	out := cmd.OutOrStdout()

	// Output in appropriate format
	if formatter.Quiet {
		// Just print IDs (one per line)
		for _, p := range projects {
			fmt.Fprintln(out, p.ID)
		}
		return nil
	}

	if formatter.JSON {
		entries := make([]listEntry, 0, len(projects))
		for _, p := range projects {
			entries = append(entries, listEntry{Project: p, Active: p.ID == active.ID})
		}
		return json.NewEncoder(out).Encode(map[string]any{
			"success":  true,
			"projects": entries,
		})
	}

	// Human-readable output
	fmt.Fprintln(out, styles.TitleStyle.Render(fmt.Sprintf("Found %d projects:", len(projects))))
	fmt.Fprintln(out)
	for _, p := range projects {
		marker := "  "
		name := p.Name
		if p.ID == active.ID {
			marker = styles.ActiveStyle.Render("● ")
			name = styles.ActiveStyle.Render(name)
		}
		fmt.Fprintf(out, "  %s%s %s\n", marker, name, styles.Subtle("("+p.ID+")"))
	}

	return nil
}
