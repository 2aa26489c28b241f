package backup

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/storage"
)

// ImportCmd returns the import command
func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all data with a JSON backup",
		Long: `Replace every project and board with the contents of a backup.

Use - to read the backup from stdin. The theme preference is kept. On any
error nothing is changed.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")

	cli.AddOutputFlags(cmd)

	return cmd
}

type importSummary struct {
	Projects        int    `json:"projects"`
	ActiveProjectID string `json:"activeProjectId,omitempty"`
}

func runImport(cmd *cobra.Command, args []string) error {
	formatter := cli.FormatterFor(cmd)
	force, _ := cmd.Flags().GetBool("force")

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return cli.Report(formatter, err)
	}

	var r io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return formatter.Fail(cli.ExitNotFound, "FILE_NOT_FOUND", err)
		}
		defer f.Close()
		r = f
	}

	// Validate before asking so a bad file never prompts.
	doc, err := storage.ParseExport(r)
	if err != nil {
		return cli.Report(formatter, err)
	}

	if !force && !formatter.Quiet && args[0] != "-" {
		if !cli.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "This will overwrite all current data. Continue?") {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
			return nil
		}
	}

	if err := cliInstance.App.Projects.Import(cmd.Context(), doc); err != nil {
		return cli.Report(formatter, err)
	}

	summary := importSummary{Projects: len(doc.Projects), ActiveProjectID: doc.ActiveProjectID}
	return formatter.Success(summary, fmt.Sprintf("Imported %d projects", summary.Projects))
}
