package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/hushbook/hushbook/internal/csvio"
)

// Export command flags.
var exportFlagOutput string

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:     "export",
	Aliases: []string{"ex"},
	Short:   "Export contacts as CSV",
	Long: `Export the contact list in the fixed CSV interchange format:
a "Name,Contact,KeepAfterWipe" header followed by one unquoted line per
contact.

Examples:
  hushbook export
  hushbook export -o contacts.csv`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFlagOutput, "output", "o", "",
		"Output file (stdout if omitted)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	contacts, err := ctx.Contacts.Load()
	if err != nil {
		return err
	}

	data := csvio.Export(contacts)

	if exportFlagOutput == "" {
		ctx.Formatter.Println(data)
		return nil
	}

	if err := os.WriteFile(exportFlagOutput, []byte(data), 0600); err != nil {
		return err
	}

	if !ctx.IsJSON() {
		ctx.CLIFormatter().Success(ctx.Tf("export.done", len(contacts), exportFlagOutput))
	}
	return nil
}
