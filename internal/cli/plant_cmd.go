package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/sprout/internal/cli/formatter"
	"github.com/alexanderramin/sprout/internal/domain"
	"github.com/alexanderramin/sprout/internal/service"
	"github.com/spf13/cobra"
)

func newAddCmd(app *App) *cobra.Command {
	var species, scientific, nickname, lastWatered string
	var every int

	cmd := &cobra.Command{
		Use:   "add [NAME]",
		Short: "Add a plant from the species catalog or by name",
		Example: `  sprout add --species "Snake Plant" --nickname Sid
  sprout add "Mystery Succulent" --every 10 --last-watered yesterday`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := app.owner()
			if err != nil {
				return err
			}
			if len(args) == 0 && species == "" {
				return fmt.Errorf("give a plant name or --species")
			}
			if cmd.Flags().Changed("every") && every < 1 {
				return fmt.Errorf("%w (got %d)", domain.ErrInvalidInterval, every)
			}

			watered, err := parseWateringDay(lastWatered, app.now())
			if err != nil {
				return err
			}

			req := service.AddPlantRequest{
				Species:              species,
				ScientificName:       scientific,
				CustomName:           nickname,
				WateringIntervalDays: every,
				LastWatered:          watered,
			}
			if len(args) == 1 {
				req.PlantName = args[0]
			}

			p, err := app.Plants.Add(context.Background(), owner, req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s, water every %s.\n",
				formatter.Bold(p.DisplayName()), formatter.TruncID(p.ID), formatter.Plural(p.WateringIntervalDays, "day"))
			return nil
		},
	}

	cmd.Flags().StringVar(&species, "species", "", "Catalog species name (see 'sprout species list')")
	cmd.Flags().StringVar(&scientific, "scientific", "", "Scientific name")
	cmd.Flags().StringVar(&nickname, "nickname", "", "Custom name shown instead of the species name")
	cmd.Flags().IntVar(&every, "every", 0, "Watering interval in days (default: catalog interval, or 7)")
	cmd.Flags().StringVar(&lastWatered, "last-watered", "", "When it was last watered (default: today)")

	return cmd
}

func newListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List plants, soonest watering first",
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := app.owner()
			if err != nil {
				return err
			}
			plants, err := app.Plants.List(context.Background(), owner, all)
			if err != nil {
				return err
			}
			if len(plants) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No plants found.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlantList(plants, app.today()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include archived plants")

	return cmd
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show PLANT",
		Short: "Show one plant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			owner, err := app.owner()
			if err != nil {
				return err
			}
			id, err := resolvePlantID(ctx, app, owner, args[0])
			if err != nil {
				return err
			}
			p, err := app.Plants.Get(ctx, owner, id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPlantDetail(p, app.today()))
			return nil
		},
	}
}

func newWaterCmd(app *App) *cobra.Command {
	var on string

	cmd := &cobra.Command{
		Use:   "water PLANT...",
		Short: "Record a watering",
		Example: `  sprout water monty
  sprout water fern pothos --on yesterday`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			owner, err := app.owner()
			if err != nil {
				return err
			}
			at, err := parseWateringDay(on, app.now())
			if err != nil {
				return err
			}

			for _, ref := range args {
				id, err := resolvePlantID(ctx, app, owner, ref)
				if err != nil {
					return err
				}
				p, err := app.Plants.Water(ctx, owner, id, at)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatWatered(p, app.today()))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&on, "on", "", "Day of the watering, e.g. 2025-03-01 or \"yesterday\" (default: now)")

	return cmd
}

func newEditCmd(app *App) *cobra.Command {
	var name, scientific, nickname string
	var every int

	cmd := &cobra.Command{
		Use:   "edit PLANT",
		Short: "Change a plant's name, nickname or watering interval",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			owner, err := app.owner()
			if err != nil {
				return err
			}

			var patch domain.PlantPatch
			if cmd.Flags().Changed("name") {
				patch.PlantName = &name
			}
			if cmd.Flags().Changed("scientific") {
				patch.ScientificName = &scientific
			}
			if cmd.Flags().Changed("nickname") {
				patch.CustomName = &nickname
			}
			if cmd.Flags().Changed("every") {
				patch.WateringIntervalDays = &every
			}
			if patch == (domain.PlantPatch{}) {
				return fmt.Errorf("nothing to change (use --name, --scientific, --nickname or --every)")
			}

			id, err := resolvePlantID(ctx, app, owner, args[0])
			if err != nil {
				return err
			}
			p, err := app.Plants.Edit(ctx, owner, id, patch)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s. Next watering %s.\n",
				formatter.Bold(p.DisplayName()), formatter.HumanDate(p.NextWaterDate))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Species or plant name")
	cmd.Flags().StringVar(&scientific, "scientific", "", "Scientific name")
	cmd.Flags().StringVar(&nickname, "nickname", "", "Custom name (empty string clears it)")
	cmd.Flags().IntVar(&every, "every", 0, "Watering interval in days")

	return cmd
}

func newRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove PLANT",
		Aliases: []string{"rm"},
		Short:   "Delete a plant",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			owner, err := app.owner()
			if err != nil {
				return err
			}
			id, err := resolvePlantID(ctx, app, owner, args[0])
			if err != nil {
				return err
			}
			if err := app.Plants.Remove(ctx, owner, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s.\n", formatter.TruncID(id))
			return nil
		},
	}
}

func newArchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "archive PLANT",
		Short: "Hide a plant from the dashboard without deleting it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setArchived(cmd, app, args[0], true)
		},
	}
}

func newRestoreCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "restore PLANT",
		Short: "Bring an archived plant back",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setArchived(cmd, app, args[0], false)
		},
	}
}

func setArchived(cmd *cobra.Command, app *App, ref string, archived bool) error {
	ctx := context.Background()
	owner, err := app.owner()
	if err != nil {
		return err
	}
	if owner.IsGuest() {
		return service.ErrGuestUnsupported
	}
	id, err := resolvePlantID(ctx, app, owner, ref)
	if err != nil {
		return err
	}

	verb := "Restored"
	if archived {
		verb = "Archived"
		err = app.Plants.Archive(ctx, owner, id)
	} else {
		err = app.Plants.Restore(ctx, owner, id)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s.\n", verb, formatter.TruncID(id))
	return nil
}

func newPhotoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "photo PLANT FILE",
		Short: "Attach a photo to a plant",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			owner, err := app.owner()
			if err != nil {
				return err
			}
			id, err := resolvePlantID(ctx, app, owner, args[0])
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("reading photo: %w", err)
			}
			p, err := app.Plants.SetPhoto(ctx, owner, id, filepath.Base(args[1]), data)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Photo saved for %s.\n", formatter.Bold(p.DisplayName()))
			return nil
		},
	}
}

func newHistoryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "history PLANT",
		Short: "Show a plant's watering history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			owner, err := app.owner()
			if err != nil {
				return err
			}
			id, err := resolvePlantID(ctx, app, owner, args[0])
			if err != nil {
				return err
			}
			p, err := app.Plants.Get(ctx, owner, id)
			if err != nil {
				return err
			}
			logs, err := app.Plants.History(ctx, owner, id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatHistory(p, logs))
			return nil
		},
	}
}
