package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hushbook/hushbook/internal/tui"
)

// browseCmd represents the browse command.
var browseCmd = &cobra.Command{
	Use:     "browse",
	Aliases: []string{"ui"},
	Short:   "Browse contacts and places interactively",
	Long: `Open a read-only terminal screen showing contacts and places,
rendered with the selected theme. Tab switches between the two lists.`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	return tui.Run(tui.BrowseConfig{
		ContactRepo: ctx.Contacts,
		PlaceRepo:   ctx.Places,
		Translator:  ctx.Translator,
		Palette:     ctx.Formatter.Palette(),
	})
}
