package backup

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/styles"
	"github.com/thenoetrevino/tablero/internal/storage"
)

// ExportCmd returns the export command
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every project to a JSON backup",
		Long: `Export every project and board as one JSON document.

Without --out the document is written to stdout. When --out names a
directory the backup is written there as kanban-backup-YYYY-MM-DD.json.

Examples:
  tablero export > backup.json
  tablero export --out ~/backups
`,
		Args: cobra.NoArgs,
		RunE: runExport,
	}

	cmd.Flags().StringP("out", "o", "", "File or directory to write the backup to")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	formatter := cli.FormatterFor(cmd)
	out, _ := cmd.Flags().GetString("out")

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return cli.Report(formatter, err)
	}

	doc, err := cliInstance.App.Projects.Export(cmd.Context())
	if err != nil {
		return cli.Report(formatter, err)
	}

	if out == "" || out == "-" {
		if err := storage.WriteExport(cmd.OutOrStdout(), doc); err != nil {
			return cli.Report(formatter, err)
		}
		return nil
	}

	if info, err := os.Stat(out); err == nil && info.IsDir() {
		out = filepath.Join(out, FileName(cliInstance.App.Clock()()))
	}

	f, err := os.Create(out)
	if err != nil {
		return cli.Report(formatter, fmt.Errorf("failed to create backup file: %w", err))
	}
	if err := storage.WriteExport(f, doc); err != nil {
		_ = f.Close()
		return cli.Report(formatter, fmt.Errorf("failed to write backup: %w", err))
	}
	if err := f.Close(); err != nil {
		return cli.Report(formatter, fmt.Errorf("failed to write backup: %w", err))
	}

	fmt.Fprintln(cmd.ErrOrStderr(), styles.Success(fmt.Sprintf("Exported %d projects to %s", len(doc.Projects), out)))
	return nil
}
