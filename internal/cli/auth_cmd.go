package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/sprout/internal/cli/formatter"
	"github.com/alexanderramin/sprout/internal/domain"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *App) *cobra.Command {
	var doSync, noSync bool

	cmd := &cobra.Command{
		Use:   "login USER_ID",
		Short: "Sign in and offer to sync this device's guest plants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID := strings.TrimSpace(args[0])
			if userID == "" {
				return fmt.Errorf("user id must not be empty")
			}
			if app.Session == nil {
				return fmt.Errorf("no session store configured")
			}
			if err := app.Session.Save(Session{UserID: userID, SignedInAt: app.now().UTC()}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s.\n", formatter.Bold(userID))

			return offerSync(cmd, app, domain.User(userID), doSync, noSync)
		},
	}

	cmd.Flags().BoolVar(&doSync, "sync", false, "Sync guest plants without asking")
	cmd.Flags().BoolVar(&noSync, "no-sync", false, "Keep guest plants on this device without asking")
	cmd.MarkFlagsMutuallyExclusive("sync", "no-sync")

	return cmd
}

// offerSync runs the sign-in transition and resolves the prompt from flags,
// an interactive confirm, or (non-interactive, no flags) by leaving the
// plants local.
func offerSync(cmd *cobra.Command, app *App, owner domain.Owner, doSync, noSync bool) error {
	ctx := context.Background()
	prompt, err := app.Sync.OnSignIn(ctx, owner)
	if err != nil {
		return err
	}
	if !prompt.Prompted {
		return nil
	}

	accept := doSync
	if !doSync && !noSync && app.interactive() {
		confirm := app.ConfirmSync
		if confirm == nil {
			confirm = promptSync
		}
		if accept, err = confirm(prompt.Pending); err != nil {
			_ = app.Sync.Decline(ctx)
			return fmt.Errorf("sync prompt: %w", err)
		}
	}

	if !accept {
		if err := app.Sync.Decline(ctx); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s stay on this device. Run 'sprout sync' to move them later.\n",
			formatter.Plural(prompt.Pending, "guest plant"))
		return nil
	}

	result, err := app.Sync.Confirm(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSyncResult(result))
	return nil
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and return to the guest session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Session == nil {
				return nil
			}
			if err := app.Session.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out. Plants added now stay on this device.")
			return nil
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show whose plants commands act on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := app.owner()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.OwnerBadge(owner))
			return nil
		},
	}
}

func newSyncCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Move this device's guest plants into the signed-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := app.owner()
			if err != nil {
				return err
			}
			if owner.IsGuest() {
				return fmt.Errorf("log in first: sync copies guest plants into an account")
			}
			prompt, err := app.Sync.OnSignIn(context.Background(), owner)
			if err != nil {
				return err
			}
			if !prompt.Prompted {
				fmt.Fprintln(cmd.OutOrStdout(), "No guest plants to sync.")
				return nil
			}
			return offerSync(cmd, app, owner, true, false)
		},
	}
}
