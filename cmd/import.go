package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hushbook/hushbook/internal/csvio"
)

// importCmd represents the import command.
var importCmd = &cobra.Command{
	Use:     "import FILE",
	Aliases: []string{"im"},
	Short:   "Import contacts from CSV",
	Long: `Import contacts from a CSV file in the interchange format produced
by export. Imported contacts are appended to the existing list with fresh
ids; a malformed file aborts without touching the stored data.

Use "-" to read from stdin.

Examples:
  hushbook import contacts.csv
  cat contacts.csv | hushbook import -`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	var data []byte
	var err error

	if args[0] == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return err
	}

	contacts, err := csvio.Import(string(data))
	if err != nil {
		return err
	}

	if err := ctx.Contacts.AddAll(contacts); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintContacts(contacts)
	}

	ctx.CLIFormatter().Success(ctx.Tf("import.done", len(contacts)))
	return nil
}
