package cli

import (
	"strings"
	"time"

	"github.com/alexanderramin/sprout/internal/domain"
	"github.com/alexanderramin/sprout/internal/scheduler"
	"github.com/alexanderramin/sprout/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Plants    service.PlantService
	Species   service.SpeciesService
	Sync      service.SyncService
	Dashboard service.DashboardService
	Transfer  service.TransferService
	Reminders service.ReminderService

	Session *SessionStore

	// DefaultUser comes from configuration and wins over the saved session.
	DefaultUser string

	IsInteractive func() bool
	// ConfirmSync asks whether pending guest plants should be synced. Nil
	// uses the huh prompt.
	ConfirmSync func(pending int) (bool, error)
	Now         func() time.Time

	userFlag  string
	guestFlag bool
}

// NewRootCmd creates the top-level "sprout" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "sprout",
		Short:         "Houseplant watering tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&app.userFlag, "user", "", "Act as this signed-in user id")
	root.PersistentFlags().BoolVar(&app.guestFlag, "guest", false, "Act on this device's guest plants")
	root.MarkFlagsMutuallyExclusive("user", "guest")

	root.AddCommand(
		newAddCmd(app),
		newListCmd(app),
		newShowCmd(app),
		newWaterCmd(app),
		newEditCmd(app),
		newRemoveCmd(app),
		newArchiveCmd(app),
		newRestoreCmd(app),
		newPhotoCmd(app),
		newHistoryCmd(app),
		newDashboardCmd(app),
		newDueCmd(app),
		newSpeciesCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newSyncCmd(app),
	)

	return root
}

// owner resolves whose plants a command acts on: --guest, then --user, then
// the configured default user, then the saved session, else guest.
func (app *App) owner() (domain.Owner, error) {
	if app.guestFlag {
		return domain.Guest(), nil
	}
	if u := strings.TrimSpace(app.userFlag); u != "" {
		return domain.User(u), nil
	}
	if u := strings.TrimSpace(app.DefaultUser); u != "" {
		return domain.User(u), nil
	}
	if app.Session == nil {
		return domain.Guest(), nil
	}
	s, err := app.Session.Load()
	if err != nil {
		return domain.Owner{}, err
	}
	return domain.User(s.UserID), nil
}

func (app *App) now() time.Time {
	if app.Now != nil {
		return app.Now()
	}
	return time.Now()
}

func (app *App) today() time.Time {
	return scheduler.CalendarDate(app.now())
}

func (app *App) interactive() bool {
	return app.IsInteractive != nil && app.IsInteractive()
}
