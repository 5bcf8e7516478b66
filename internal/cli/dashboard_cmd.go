package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/sprout/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"dash"},
		Short:   "Show every plant with its watering status and totals",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := app.owner()
			if err != nil {
				return err
			}
			d, err := app.Dashboard.Build(context.Background(), owner, app.today())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDashboard(d))
			return nil
		},
	}
}

func newDueCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "due",
		Short: "List plants that need water today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := app.owner()
			if err != nil {
				return err
			}
			cards, err := app.Reminders.Due(context.Background(), owner, app.today())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatReminders(cards))
			return nil
		},
	}
}

func newSpeciesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "species",
		Short: "Browse the species catalog",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list [QUERY]",
		Short: "List catalog species, optionally filtered by name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			species, err := app.Species.List(context.Background(), query)
			if err != nil {
				return err
			}
			if len(species) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No species match %q.\n", query)
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSpeciesList(species))
			return nil
		},
	})

	return cmd
}
