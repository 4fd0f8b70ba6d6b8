package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/hushbook/hushbook/internal/runtime"
)

// passwordCmd represents the password command.
var passwordCmd = &cobra.Command{
	Use:     "password",
	Aliases: []string{"passwd"},
	Short:   "Manage the app and termination passwords",
	Long: `Set or remove the two passwords.

The app password gates access to every command. The termination password
also grants access, but entering it silently removes every contact not
flagged with --keep. Both are optional and independent.

Examples:
  hushbook password set
  hushbook password remove
  hushbook password duress set
  hushbook password duress remove`,
}

// passwordSetCmd sets the access password.
var passwordSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set or change the app password",
	Args:  cobra.NoArgs,
	RunE:  runPasswordSet,
}

// passwordRemoveCmd removes the access password.
var passwordRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove the app password",
	Args:  cobra.NoArgs,
	RunE:  runPasswordRemove,
}

// duressCmd groups the termination password commands.
var duressCmd = &cobra.Command{
	Use:     "duress",
	Aliases: []string{"termination"},
	Short:   "Manage the termination password",
}

// duressSetCmd sets the termination password.
var duressSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set or change the termination password",
	Args:  cobra.NoArgs,
	RunE:  runDuressSet,
}

// duressRemoveCmd removes the termination password.
var duressRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove the termination password",
	Args:  cobra.NoArgs,
	RunE:  runDuressRemove,
}

func init() {
	passwordCmd.AddCommand(passwordSetCmd)
	passwordCmd.AddCommand(passwordRemoveCmd)
	duressCmd.AddCommand(duressSetCmd)
	duressCmd.AddCommand(duressRemoveCmd)
	passwordCmd.AddCommand(duressCmd)
	rootCmd.AddCommand(passwordCmd)
}

// promptNewPassword reads a new password twice and verifies both entries.
func promptNewPassword() (string, error) {
	entered, err := readPassword(ctx.T("auth.prompt"))
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(entered) == "" {
		return "", runtime.ErrPasswordRequired
	}

	confirmed, err := readPassword(ctx.T("auth.confirm"))
	if err != nil {
		return "", err
	}
	if entered != confirmed {
		return "", runtime.ErrConfirmMismatch
	}

	return entered, nil
}

func runPasswordSet(cmd *cobra.Command, args []string) error {
	password, err := promptNewPassword()
	if err != nil {
		return err
	}

	if err := ctx.Credentials.SetAccess(password); err != nil {
		return err
	}

	ctx.CLIFormatter().Success(ctx.T("auth.saved"))
	return nil
}

func runPasswordRemove(cmd *cobra.Command, args []string) error {
	if err := ctx.Credentials.ClearAccess(); err != nil {
		return err
	}

	ctx.CLIFormatter().Success(ctx.T("auth.removed"))
	return nil
}

func runDuressSet(cmd *cobra.Command, args []string) error {
	password, err := promptNewPassword()
	if err != nil {
		return err
	}

	if err := ctx.Credentials.SetDuress(password); err != nil {
		return err
	}

	ctx.CLIFormatter().Success(ctx.T("auth.duress_saved"))
	return nil
}

func runDuressRemove(cmd *cobra.Command, args []string) error {
	if err := ctx.Credentials.ClearDuress(); err != nil {
		return err
	}

	ctx.CLIFormatter().Success(ctx.T("auth.duress_removed"))
	return nil
}
