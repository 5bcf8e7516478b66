package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/sprout/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTwoGuestPlants(t *testing.T, app *App) {
	t.Helper()
	for _, name := range []string{"Pothos", "Fern"} {
		_, err := executeCmd(t, app, "add", name)
		require.NoError(t, err)
	}
}

func TestLoginCmd_SyncFlagMovesGuestPlants(t *testing.T) {
	app := testApp(t)
	seedTwoGuestPlants(t, app)

	out, err := executeCmd(t, app, "login", "ana", "--sync")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged in as ana")
	assert.Contains(t, out, "Synced 2 plants")

	assert.Empty(t, guestPlants(t, app))
	remote, err := app.Plants.List(context.Background(), domain.User("ana"), false)
	require.NoError(t, err)
	assert.Len(t, remote, 2)

	out, err = executeCmd(t, app, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "ana")
}

func TestLoginCmd_NonInteractiveLeavesPlantsLocal(t *testing.T) {
	app := testApp(t)
	seedTwoGuestPlants(t, app)

	out, err := executeCmd(t, app, "login", "ana")
	require.NoError(t, err)
	assert.Contains(t, out, "2 guest plants stay on this device")
	assert.Len(t, guestPlants(t, app), 2)

	out, err = executeCmd(t, app, "sync")
	require.NoError(t, err)
	assert.Contains(t, out, "Synced 2 plants")
	assert.Empty(t, guestPlants(t, app))

	out, err = executeCmd(t, app, "sync")
	require.NoError(t, err)
	assert.Contains(t, out, "No guest plants to sync.")
}

func TestLoginCmd_InteractivePrompt(t *testing.T) {
	tests := []struct {
		name       string
		answer     bool
		wantLocal  int
		wantRemote int
	}{
		{"accept", true, 0, 2},
		{"decline", false, 2, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := testApp(t)
			seedTwoGuestPlants(t, app)

			var asked int
			app.IsInteractive = func() bool { return true }
			app.ConfirmSync = func(pending int) (bool, error) {
				asked = pending
				return tc.answer, nil
			}

			_, err := executeCmd(t, app, "login", "ana")
			require.NoError(t, err)
			assert.Equal(t, 2, asked)

			assert.Len(t, guestPlants(t, app), tc.wantLocal)
			remote, err := app.Plants.List(context.Background(), domain.User("ana"), false)
			require.NoError(t, err)
			assert.Len(t, remote, tc.wantRemote)
		})
	}
}

func TestLoginCmd_NoPromptWithoutGuestPlants(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return true }
	app.ConfirmSync = func(int) (bool, error) {
		t.Fatal("prompt should not be shown")
		return false, nil
	}

	out, err := executeCmd(t, app, "login", "ana")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged in as ana")
}

func TestLogoutCmd_ReturnsToGuest(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "login", "ana", "--no-sync")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "add", "Pothos")
	require.NoError(t, err)
	assert.Empty(t, guestPlants(t, app))

	_, err = executeCmd(t, app, "logout")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "guest session")

	_, err = executeCmd(t, app, "sync")
	assert.ErrorContains(t, err, "log in first")
}

func TestGuestFlagOverridesSession(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "login", "ana")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "--guest", "add", "Fern")
	require.NoError(t, err)
	assert.Len(t, guestPlants(t, app), 1)
}
