package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hushbook/hushbook/internal/locale"
	"github.com/hushbook/hushbook/internal/runtime"
	"github.com/hushbook/hushbook/internal/storage"
)

// settingsCmd represents the settings command.
var settingsCmd = &cobra.Command{
	Use:     "settings",
	Aliases: []string{"config"},
	Short:   "Show and change language and theme",
	Long: `Show the current preferences, or change the UI language and theme.

Examples:
  hushbook settings
  hushbook settings language ru
  hushbook settings theme dark`,
	RunE: runSettingsShow,
}

// settingsLanguageCmd changes the language.
var settingsLanguageCmd = &cobra.Command{
	Use:   "language CODE",
	Short: "Set the UI language",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsLanguage,
}

// settingsThemeCmd changes the theme.
var settingsThemeCmd = &cobra.Command{
	Use:       "theme dark|light",
	Short:     "Set the UI theme",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{storage.ThemeDark, storage.ThemeLight},
	RunE:      runSettingsTheme,
}

func init() {
	settingsCmd.AddCommand(settingsLanguageCmd)
	settingsCmd.AddCommand(settingsThemeCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	dark, err := ctx.Prefs.DarkTheme()
	if err != nil {
		return err
	}

	theme := storage.ThemeLight
	if dark {
		theme = storage.ThemeDark
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(map[string]any{
			"language":  ctx.Translator.Language(),
			"theme":     theme,
			"languages": locale.Languages,
		})
	}

	cli := ctx.CLIFormatter()
	cli.Title(ctx.T("settings.title"))
	cli.Printf("%s: %s\n", ctx.T("settings.language"), ctx.Translator.Language())
	cli.Printf("%s: %s\n", ctx.T("settings.theme"), theme)
	cli.Println()
	for _, lang := range locale.Languages {
		cli.Printf("  %s  %s\n", lang.Code, lang.Label)
	}
	return nil
}

func runSettingsLanguage(cmd *cobra.Command, args []string) error {
	code := args[0]
	if !locale.Supported(code) {
		return fmt.Errorf("%w: %s", runtime.ErrUnsupportedLanguage, code)
	}

	if err := ctx.Prefs.SetLanguage(code); err != nil {
		return err
	}

	// Confirm in the just-selected language.
	ctx.Translator.SetLanguage(code)
	ctx.CLIFormatter().Success(ctx.T("settings.language") + ": " + code)
	return nil
}

func runSettingsTheme(cmd *cobra.Command, args []string) error {
	switch args[0] {
	case storage.ThemeDark, storage.ThemeLight:
	default:
		return runtime.NewValidationError("theme", "must be dark or light")
	}

	if err := ctx.Prefs.SetDarkTheme(args[0] == storage.ThemeDark); err != nil {
		return err
	}

	ctx.CLIFormatter().Success(ctx.T("settings.theme") + ": " + args[0])
	return nil
}
