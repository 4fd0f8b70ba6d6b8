// Package cmd provides the CLI commands for Hushbook.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hushbook/hushbook/internal/auth"
	"github.com/hushbook/hushbook/internal/logging"
	"github.com/hushbook/hushbook/internal/output"
	"github.com/hushbook/hushbook/internal/runtime"
	"github.com/hushbook/hushbook/internal/storage"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat   string
	flagColor    string
	flagDebug    bool
	flagDB       string
	flagPassword string
)

// maxPasswordPrompts bounds the interactive unlock loop per invocation.
// The gate itself has no lockout; re-running the binary prompts again.
const maxPasswordPrompts = 3

// ctx is the shared runtime context.
var ctx *runtime.Context

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "hushbook",
	Short: "A password-gated local contact and place keeper",
	Long: `Hushbook keeps a private list of contacts and named places in a local
database. Access can be gated behind a password; a secondary termination
password silently removes every contact not flagged to be kept.

Examples:
  hushbook contact add "Ada Lovelace" --contact ada@example.org --keep
  hushbook place add Home "1 Main Street, Springfield"
  hushbook export -o contacts.csv
  hushbook settings theme dark`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for completion and help commands
		if cmd.Name() == "completion" || cmd.Name() == "help" {
			return nil
		}

		if flagDebug {
			logging.Init(logging.DebugConfig())
		}

		// Parse format flag
		var format output.Format
		switch flagFormat {
		case "json":
			format = output.FormatJSON
		case "plain":
			format = output.FormatPlain
		default:
			format = output.FormatCLI
		}

		// Parse color flag
		var colorMode output.ColorMode
		switch flagColor {
		case "always":
			colorMode = output.ColorAlways
		case "never":
			colorMode = output.ColorNever
		default:
			colorMode = output.ColorAuto
		}

		// Create runtime context
		opts := runtime.DefaultOptions()
		opts.Format = format
		opts.ColorMode = colorMode
		opts.Debug = flagDebug
		if flagDB != "" {
			opts.DBPath = flagDB
		}

		var err error
		ctx, err = runtime.New(opts)
		if err != nil {
			return err
		}

		return unlock()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if ctx != nil {
			return ctx.Close()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: show a summary of the stored data
		return runStatus(cmd, args)
	},
}

// unlock blocks until the gate grants access. With no access password
// configured the gate is already open. A wrong --password fails immediately;
// interactive entry re-prompts a few times before giving up.
func unlock() error {
	state, err := ctx.Gate.State()
	if err != nil {
		return err
	}
	if state == auth.Unlocked {
		return nil
	}

	if flagPassword != "" {
		ok, err := ctx.Gate.Submit(flagPassword)
		if ok {
			return nil
		}
		if err != nil && !errors.Is(err, auth.ErrIncorrectPassword) {
			return err
		}
		return fmt.Errorf("%s", ctx.T("auth.incorrect"))
	}

	for attempt := 0; attempt < maxPasswordPrompts; attempt++ {
		entered, err := readPassword(ctx.T("auth.prompt"))
		if err != nil {
			return err
		}

		ok, submitErr := ctx.Gate.Submit(entered)
		if ok {
			return nil
		}
		if submitErr != nil && !errors.Is(submitErr, auth.ErrIncorrectPassword) {
			return submitErr
		}
		fmt.Fprintln(os.Stderr, ctx.T("auth.incorrect"))
	}

	return fmt.Errorf("%s", ctx.T("auth.incorrect"))
}

// runStatus shows a summary of the stored data.
func runStatus(cmd *cobra.Command, args []string) error {
	contactCount, err := ctx.Contacts.Count()
	if err != nil {
		return err
	}
	placeCount, err := ctx.Places.Count()
	if err != nil {
		return err
	}
	_, passwordSet, err := ctx.Credentials.Access()
	if err != nil {
		return err
	}
	_, duressSet, err := ctx.Credentials.Duress()
	if err != nil {
		return err
	}
	dark, err := ctx.Prefs.DarkTheme()
	if err != nil {
		return err
	}

	theme := storage.ThemeLight
	if dark {
		theme = storage.ThemeDark
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(output.StatusResponse{
			Contacts:    contactCount,
			Places:      placeCount,
			Language:    ctx.Translator.Language(),
			Theme:       theme,
			PasswordSet: passwordSet,
			DuressSet:   duressSet,
		})
	}

	cli := ctx.CLIFormatter()
	cli.Title("hushbook")
	cli.Printf("%s: %d\n", ctx.T("contacts.title"), contactCount)
	cli.Printf("%s: %d\n", ctx.T("places.title"), placeCount)
	cli.Printf("%s: %s\n", ctx.T("settings.language"), ctx.Translator.Language())
	cli.Printf("%s: %s\n", ctx.T("settings.theme"), theme)
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		os.Stderr.WriteString("Error: " + runtime.FormatError(err) + "\n")
	}
	return err
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug output")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "",
		"Database directory (defaults to the XDG data directory)")
	rootCmd.PersistentFlags().StringVar(&flagPassword, "password", "",
		"App password for non-interactive use")

	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("hushbook %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
	},
}
