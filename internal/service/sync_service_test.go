package service

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/sprout/internal/db"
	"github.com/alexanderramin/sprout/internal/domain"
	"github.com/alexanderramin/sprout/internal/testutil"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedGuest(t *testing.T, h *harness, names ...string) {
	t.Helper()
	for _, name := range names {
		_, err := h.plants.Add(context.Background(), domain.Guest(), AddPlantRequest{PlantName: name, LastWatered: testutil.Day(2025, 7, 1)})
		require.NoError(t, err)
	}
}

func plantNames(plants []*domain.Plant) []string {
	names := make([]string, 0, len(plants))
	for _, p := range plants {
		names = append(names, p.PlantName)
	}
	return names
}

func TestSync_FirstSignInWithTwoGuestPlants(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	seedGuest(t, h, "Pothos", "Fern")

	svc := NewSyncService(h.local, h.remote, h.logger)
	assert.Equal(t, SyncIdle, svc.State())

	prompt, err := svc.OnSignIn(ctx, domain.User("new-user"))
	require.NoError(t, err)
	assert.True(t, prompt.Prompted)
	assert.Equal(t, 2, prompt.Pending)
	assert.Equal(t, SyncPromptedForSync, svc.State())

	result, err := svc.Confirm(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Synced)
	assert.Zero(t, result.Failed)
	assert.Equal(t, SyncIdle, svc.State())

	remote, err := h.remote.ListByUser(ctx, "new-user", false)
	require.NoError(t, err)
	require.Len(t, remote, 2)
	for _, p := range remote {
		assert.Equal(t, "new-user", p.UserID)
		assert.False(t, strings.HasPrefix(p.ID, "local-"), "remote rows get server ids")
	}
	if diff := cmp.Diff([]string{"Fern", "Pothos"}, plantNames(remote)); diff != "" {
		t.Errorf("remote plants mismatch (-want +got):\n%s", diff)
	}

	local, err := h.local.List(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, local)
}

func TestSync_NoPromptWithoutGuestPlantsOrForGuests(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	svc := NewSyncService(h.local, h.remote, h.logger)

	prompt, err := svc.OnSignIn(ctx, domain.User("u1"))
	require.NoError(t, err)
	assert.False(t, prompt.Prompted)
	assert.Equal(t, SyncIdle, svc.State())

	seedGuest(t, h, "Pothos")
	prompt, err = svc.OnSignIn(ctx, domain.Guest())
	require.NoError(t, err)
	assert.False(t, prompt.Prompted)
	assert.Equal(t, SyncIdle, svc.State())
}

func TestSync_PromptFiresOnce(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	seedGuest(t, h, "Pothos")
	svc := NewSyncService(h.local, h.remote, h.logger)

	_, err := svc.OnSignIn(ctx, domain.User("u1"))
	require.NoError(t, err)
	again, err := svc.OnSignIn(ctx, domain.User("u1"))
	require.NoError(t, err)
	assert.True(t, again.Prompted)
	assert.Equal(t, SyncPromptedForSync, svc.State())

	_, err = svc.Confirm(ctx)
	require.NoError(t, err)
	_, err = svc.Confirm(ctx)
	assert.ErrorIs(t, err, ErrNoSyncPending)
}

func TestSync_DeclineKeepsGuestPlants(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	seedGuest(t, h, "Pothos", "Fern")
	svc := NewSyncService(h.local, h.remote, h.logger)

	_, err := svc.OnSignIn(ctx, domain.User("u1"))
	require.NoError(t, err)
	require.NoError(t, svc.Decline(ctx))
	assert.Equal(t, SyncIdle, svc.State())
	assert.ErrorIs(t, svc.Decline(ctx), ErrNoSyncPending)

	local, err := h.local.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, local, 2)

	remote, err := h.remote.ListByUser(ctx, "u1", false)
	require.NoError(t, err)
	assert.Empty(t, remote)
}

func TestSync_PartialFailureKeepsUnsyncedPlantsLocal(t *testing.T) {
	boom := errors.New("connection reset")
	h := newHarness(t, withRemoteDB(func(d db.DBTX) db.DBTX {
		return &testutil.FailOnceDBTX{DBTX: d, Match: "INSERT INTO plants", N: 2, Err: boom}
	}))
	ctx := context.Background()
	seedGuest(t, h, "Aloe", "Basil", "Cactus")

	svc := NewSyncService(h.local, h.remote, h.logger)
	_, err := svc.OnSignIn(ctx, domain.User("u1"))
	require.NoError(t, err)

	result, err := svc.Confirm(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Synced)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.ErrorIs(t, result.Errors[0], boom)
	assert.Equal(t, SyncIdle, svc.State())

	local, err := h.local.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, local, 1)
	assert.Equal(t, "Basil", local[0].PlantName)

	remote, err := h.remote.ListByUser(ctx, "u1", false)
	require.NoError(t, err)
	assert.Len(t, remote, 2)
	assert.Equal(t, 1, h.observed.FilterMessage("syncing guest plant failed").Len())

	// The leftover plant raises a new prompt on the next sign-in.
	prompt, err := svc.OnSignIn(ctx, domain.User("u1"))
	require.NoError(t, err)
	assert.Equal(t, 1, prompt.Pending)
}

func TestSync_FullSuccessRemovesGuestFile(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	seedGuest(t, h, "Pothos")
	svc := NewSyncService(h.local, h.remote, h.logger)

	_, err := svc.OnSignIn(ctx, domain.User("u1"))
	require.NoError(t, err)
	_, err = svc.Confirm(ctx)
	require.NoError(t, err)

	_, statErr := os.Stat(h.local.Path())
	assert.True(t, os.IsNotExist(statErr))
}

func TestSync_UnscheduledGuestPlantGetsScheduleAndAccountStaysListable(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.local.Append(ctx, []*domain.Plant{{PlantName: "Ghost", WateringIntervalDays: 7}})

	svc := NewSyncService(h.local, h.remote, h.logger)
	svc.(*syncService).now = func() time.Time { return time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC) }

	_, err := svc.OnSignIn(ctx, domain.User("u2"))
	require.NoError(t, err)
	result, err := svc.Confirm(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Synced)

	list, err := h.plants.List(ctx, domain.User("u2"), false)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, testutil.Day(2025, 6, 15), list[0].LastWatered)
	assert.Equal(t, testutil.Day(2025, 6, 22), list[0].NextWaterDate)
	assert.Equal(t, 1, h.observed.FilterMessage("filled missing schedule for synced plant").Len())
}
