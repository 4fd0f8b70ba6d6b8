package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/hushbook/hushbook/internal/model"
	"github.com/hushbook/hushbook/internal/runtime"
)

// contactCmd represents the contact command.
var contactCmd = &cobra.Command{
	Use:     "contact",
	Aliases: []string{"contacts", "c"},
	Short:   "Manage contacts",
	Long: `List, add, edit, and delete contacts.

Contacts flagged with --keep survive a termination-password login.

Examples:
  hushbook contact
  hushbook contact add "Ada Lovelace" --contact ada@example.org --keep
  hushbook contact edit 0192d1f0-... --contact +1-555-0100
  hushbook contact delete 0192d1f0-...
  hushbook contact clear --yes`,
	RunE: runContactList,
}

// Contact subcommand flags.
var (
	contactAddFlagDetail  string
	contactAddFlagKeep    bool
	contactEditFlagName   string
	contactEditFlagDetail string
	contactEditFlagKeep   bool
	contactClearFlagYes   bool
)

// contactAddCmd adds a new contact.
var contactAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add a contact",
	Args:  cobra.ExactArgs(1),
	RunE:  runContactAdd,
}

// contactEditCmd edits an existing contact.
var contactEditCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Edit a contact",
	Args:  cobra.ExactArgs(1),
	RunE:  runContactEdit,
}

// contactDeleteCmd deletes a contact.
var contactDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a contact",
	Args:  cobra.ExactArgs(1),
	RunE:  runContactDelete,
}

// contactClearCmd removes every contact.
var contactClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all contacts",
	Args:  cobra.NoArgs,
	RunE:  runContactClear,
}

func init() {
	contactAddCmd.Flags().StringVarP(&contactAddFlagDetail, "contact", "c", "",
		"Contact detail: phone, email, or anything else")
	contactAddCmd.Flags().BoolVarP(&contactAddFlagKeep, "keep", "k", false,
		"Keep this contact after a termination wipe")

	contactEditCmd.Flags().StringVarP(&contactEditFlagName, "name", "n", "", "Update name")
	contactEditCmd.Flags().StringVarP(&contactEditFlagDetail, "contact", "c", "", "Update contact detail")
	contactEditCmd.Flags().BoolVarP(&contactEditFlagKeep, "keep", "k", false,
		"Keep this contact after a termination wipe")

	contactClearCmd.Flags().BoolVarP(&contactClearFlagYes, "yes", "y", false,
		"Confirm removing every contact")

	contactCmd.AddCommand(contactAddCmd)
	contactCmd.AddCommand(contactEditCmd)
	contactCmd.AddCommand(contactDeleteCmd)
	contactCmd.AddCommand(contactClearCmd)
	rootCmd.AddCommand(contactCmd)
}

func runContactList(cmd *cobra.Command, args []string) error {
	contacts, err := ctx.Contacts.Load()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintContacts(contacts)
	}

	cli := ctx.CLIFormatter()
	if len(contacts) == 0 {
		cli.Muted(ctx.T("contacts.empty"))
		return nil
	}

	cli.Title(ctx.T("contacts.title"))
	for _, contact := range contacts {
		cli.PrintContact(contact, ctx.T("contacts.keep"))
	}
	return nil
}

func runContactAdd(cmd *cobra.Command, args []string) error {
	name := strings.TrimSpace(args[0])
	if name == "" {
		return runtime.ErrNameRequired
	}

	contact := model.NewContact(name, contactAddFlagDetail, contactAddFlagKeep)
	if err := ctx.Contacts.Add(contact); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(contact)
	}

	ctx.CLIFormatter().Success(ctx.Tf("contacts.added", contact.Name))
	return nil
}

func runContactEdit(cmd *cobra.Command, args []string) error {
	id := args[0]

	existing, found, err := ctx.Contacts.Find(id)
	if err != nil {
		return err
	}
	if !found {
		return runtime.ErrContactNotFound
	}

	updated := *existing
	if cmd.Flags().Changed("name") {
		name := strings.TrimSpace(contactEditFlagName)
		if name == "" {
			return runtime.ErrNameRequired
		}
		updated.Name = name
	}
	if cmd.Flags().Changed("contact") {
		updated.Contact = strings.TrimSpace(contactEditFlagDetail)
	}
	if cmd.Flags().Changed("keep") {
		updated.KeepAfterWipe = contactEditFlagKeep
	}

	if err := ctx.Contacts.Update(id, &updated); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(&updated)
	}

	ctx.CLIFormatter().Success(ctx.Tf("contacts.updated", updated.Name))
	return nil
}

func runContactDelete(cmd *cobra.Command, args []string) error {
	id := args[0]

	existing, found, err := ctx.Contacts.Find(id)
	if err != nil {
		return err
	}
	if !found {
		return runtime.ErrContactNotFound
	}

	if err := ctx.Contacts.Remove(id); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(map[string]string{"status": "deleted", "id": id})
	}

	ctx.CLIFormatter().Success(ctx.Tf("contacts.deleted", existing.Name))
	return nil
}

func runContactClear(cmd *cobra.Command, args []string) error {
	if !contactClearFlagYes {
		return runtime.NewValidationError("clear", "pass --yes to remove every contact")
	}

	if err := ctx.Contacts.Clear(); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(map[string]string{"status": "cleared"})
	}

	ctx.CLIFormatter().Success(ctx.T("contacts.cleared"))
	return nil
}
