package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/sprout/internal/cli/formatter"
	"github.com/alexanderramin/sprout/internal/domain"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:       "export csv|json",
		Short:     "Export plants as CSV or JSON",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"csv", "json"},
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := app.owner()
			if err != nil {
				return err
			}

			var export func(context.Context, domain.Owner, io.Writer) (int, error)
			switch args[0] {
			case "csv":
				export = app.Transfer.ExportCSV
			case "json":
				export = app.Transfer.ExportJSON
			default:
				return fmt.Errorf("unknown export format %q (use csv or json)", args[0])
			}

			if out == "" || out == "-" {
				_, err := export(context.Background(), owner, cmd.OutOrStdout())
				return err
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", out, err)
			}
			n, err := export(context.Background(), owner, f)
			if cerr := f.Close(); err == nil && cerr != nil {
				err = fmt.Errorf("closing %s: %w", out, cerr)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Exported %s to %s.\n", formatter.Plural(n, "plant"), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to this file instead of stdout")

	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import plants from a JSON export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := app.owner()
			if err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening import file: %w", err)
			}
			defer f.Close()

			result, err := app.Transfer.ImportJSON(context.Background(), owner, f)
			if result != nil && result.Imported > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatImportResult(result))
			}
			return err
		},
	}
}
