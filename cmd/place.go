package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hushbook/hushbook/internal/model"
	"github.com/hushbook/hushbook/internal/runtime"
)

// placeCmd represents the place command.
var placeCmd = &cobra.Command{
	Use:     "place",
	Aliases: []string{"places", "p"},
	Short:   "Manage places",
	Long: `List, add, edit, and delete named places.

Adding or changing an address triggers a one-shot geocoding attempt; the
place is saved either way, with coordinates when the lookup succeeds.
Geocoding requires HUSHBOOK_GEOCODE_KEY to be set.

Examples:
  hushbook place
  hushbook place add Home "1 Main Street, Springfield"
  hushbook place edit 0192d1f0-... --address "2 Main Street, Springfield"
  hushbook place show 0192d1f0-...
  hushbook place delete 0192d1f0-...`,
	RunE: runPlaceList,
}

// Place subcommand flags.
var (
	placeEditFlagName    string
	placeEditFlagAddress string
)

// placeAddCmd adds a new place.
var placeAddCmd = &cobra.Command{
	Use:   "add NAME ADDRESS",
	Short: "Add a place",
	Args:  cobra.ExactArgs(2),
	RunE:  runPlaceAdd,
}

// placeEditCmd edits an existing place.
var placeEditCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Edit a place",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlaceEdit,
}

// placeShowCmd shows one place in detail.
var placeShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show a place with its coordinates and map link",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlaceShow,
}

// placeDeleteCmd deletes a place.
var placeDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a place",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlaceDelete,
}

func init() {
	placeEditCmd.Flags().StringVarP(&placeEditFlagName, "name", "n", "", "Update name")
	placeEditCmd.Flags().StringVarP(&placeEditFlagAddress, "address", "a", "", "Update address")

	placeCmd.AddCommand(placeAddCmd)
	placeCmd.AddCommand(placeEditCmd)
	placeCmd.AddCommand(placeShowCmd)
	placeCmd.AddCommand(placeDeleteCmd)
	rootCmd.AddCommand(placeCmd)
}

func runPlaceList(cmd *cobra.Command, args []string) error {
	places, err := ctx.Places.Load()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintPlaces(places)
	}

	cli := ctx.CLIFormatter()
	if len(places) == 0 {
		cli.Muted(ctx.T("places.empty"))
		return nil
	}

	cli.Title(ctx.T("places.title"))
	for _, place := range places {
		cli.PrintPlace(place, ctx.T("places.no_coordinates"))
	}
	return nil
}

func runPlaceAdd(cmd *cobra.Command, args []string) error {
	name := strings.TrimSpace(args[0])
	address := strings.TrimSpace(args[1])
	if name == "" {
		return runtime.ErrNameRequired
	}
	if address == "" {
		return runtime.ErrAddressRequired
	}

	place := model.NewPlace(name, address)
	// Best-effort: the save proceeds with or without coordinates.
	if coords, ok := ctx.Resolver.Resolve(context.Background(), address); ok {
		place.SetCoordinates(coords)
	}

	if err := ctx.Places.Add(place); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(place)
	}

	ctx.CLIFormatter().Success(ctx.Tf("places.added", place.Name))
	return nil
}

func runPlaceEdit(cmd *cobra.Command, args []string) error {
	id := args[0]

	existing, found, err := ctx.Places.Find(id)
	if err != nil {
		return err
	}
	if !found {
		return runtime.ErrPlaceNotFound
	}

	updated := *existing
	if cmd.Flags().Changed("name") {
		name := strings.TrimSpace(placeEditFlagName)
		if name == "" {
			return runtime.ErrNameRequired
		}
		updated.Name = name
	}
	if cmd.Flags().Changed("address") {
		address := strings.TrimSpace(placeEditFlagAddress)
		if address == "" {
			return runtime.ErrAddressRequired
		}
		updated.Address = address

		// An address change re-triggers the geocode attempt. A miss clears
		// stale coordinates rather than keeping ones for the old address.
		if coords, ok := ctx.Resolver.Resolve(context.Background(), address); ok {
			updated.SetCoordinates(coords)
		} else {
			updated.ClearCoordinates()
		}
	}

	if err := ctx.Places.Update(id, &updated); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(&updated)
	}

	ctx.CLIFormatter().Success(ctx.Tf("places.updated", updated.Name))
	return nil
}

func runPlaceShow(cmd *cobra.Command, args []string) error {
	place, found, err := ctx.Places.Find(args[0])
	if err != nil {
		return err
	}
	if !found {
		return runtime.ErrPlaceNotFound
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(place)
	}

	cli := ctx.CLIFormatter()
	cli.Title(place.Name)
	cli.Printf("%s\n", place.Address)
	if place.HasCoordinates() {
		cli.Printf("%.6f, %.6f\n", *place.Latitude, *place.Longitude)
		cli.Muted(place.MapsURL())
	} else {
		cli.Muted(ctx.T("places.no_coordinates"))
		cli.Muted(place.SearchURL())
	}
	return nil
}

func runPlaceDelete(cmd *cobra.Command, args []string) error {
	id := args[0]

	existing, found, err := ctx.Places.Find(id)
	if err != nil {
		return err
	}
	if !found {
		return runtime.ErrPlaceNotFound
	}

	if err := ctx.Places.Remove(id); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(map[string]string{"status": "deleted", "id": id})
	}

	ctx.CLIFormatter().Success(ctx.Tf("places.deleted", existing.Name))
	return nil
}
