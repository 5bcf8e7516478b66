package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/sprout/internal/domain"
	"github.com/alexanderramin/sprout/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlantRepo_CreateAssignsServerID(t *testing.T) {
	repo := NewSQLitePlantRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	p := testutil.NewTestPlant("Pothos", testutil.WithUser("u1"))
	p.ID = "local-should-be-replaced"
	require.NoError(t, repo.Create(ctx, p))

	assert.NotEqual(t, "local-should-be-replaced", p.ID)
	assert.NotEmpty(t, p.ID)
}

func TestPlantRepo_CreateRequiresUser(t *testing.T) {
	repo := NewSQLitePlantRepo(testutil.NewTestDB(t))

	err := repo.Create(context.Background(), testutil.NewTestPlant("Pothos"))
	assert.Error(t, err)
}

func TestPlantRepo_CreateAndGetByID(t *testing.T) {
	repo := NewSQLitePlantRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	last := testutil.Day(2025, 3, 1)
	p := testutil.NewTestPlant("Monstera",
		testutil.WithUser("u1"),
		testutil.WithLastWatered(last),
		testutil.WithInterval(9),
		testutil.WithCustomName("Monty"),
		testutil.WithScientificName("Monstera deliciosa"),
	)
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByID(ctx, "u1", p.ID)
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, "Monty", got.DisplayName())
	assert.Equal(t, "Monstera deliciosa", got.ScientificName)
	assert.Equal(t, 9, got.WateringIntervalDays)
	assert.Equal(t, last, got.LastWatered)
	assert.Equal(t, testutil.Day(2025, 3, 10), got.NextWaterDate)
	assert.Equal(t, domain.PlantActive, got.Status)
	assert.Nil(t, got.LastWateredAt)
}

func TestPlantRepo_GetByID_OtherUserIsNotFound(t *testing.T) {
	repo := NewSQLitePlantRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	p := testutil.NewTestPlant("Pothos", testutil.WithUser("u1"))
	require.NoError(t, repo.Create(ctx, p))

	_, err := repo.GetByID(ctx, "u2", p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPlantRepo_ListByUser_OrderedByNextWaterDate(t *testing.T) {
	repo := NewSQLitePlantRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	late := testutil.NewTestPlant("Cactus", testutil.WithUser("u1"), testutil.WithLastWatered(testutil.Day(2025, 1, 1)), testutil.WithInterval(30))
	soon := testutil.NewTestPlant("Fern", testutil.WithUser("u1"), testutil.WithLastWatered(testutil.Day(2025, 1, 1)), testutil.WithInterval(2))
	mid := testutil.NewTestPlant("Pothos", testutil.WithUser("u1"), testutil.WithLastWatered(testutil.Day(2025, 1, 1)), testutil.WithInterval(7))
	other := testutil.NewTestPlant("Other", testutil.WithUser("u2"))
	for _, p := range []*domain.Plant{late, soon, mid, other} {
		require.NoError(t, repo.Create(ctx, p))
	}

	list, err := repo.ListByUser(ctx, "u1", false)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{soon.ID, mid.ID, late.ID}, []string{list[0].ID, list[1].ID, list[2].ID})
}

func TestPlantRepo_ArchiveAndRestore(t *testing.T) {
	repo := NewSQLitePlantRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	p := testutil.NewTestPlant("Pothos", testutil.WithUser("u1"))
	require.NoError(t, repo.Create(ctx, p))

	require.NoError(t, repo.SetStatus(ctx, "u1", p.ID, domain.PlantArchived))

	active, err := repo.ListByUser(ctx, "u1", false)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := repo.ListByUser(ctx, "u1", true)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, all[0].IsArchived())

	require.NoError(t, repo.SetStatus(ctx, "u1", p.ID, domain.PlantActive))
	active, err = repo.ListByUser(ctx, "u1", false)
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestPlantRepo_SetStatus_NotFound(t *testing.T) {
	repo := NewSQLitePlantRepo(testutil.NewTestDB(t))
	err := repo.SetStatus(context.Background(), "u1", "missing", domain.PlantArchived)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPlantRepo_UpdatePersistsWatering(t *testing.T) {
	repo := NewSQLitePlantRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	p := testutil.NewTestPlant("Pothos", testutil.WithUser("u1"), testutil.WithLastWatered(testutil.Day(2025, 1, 1)))
	require.NoError(t, repo.Create(ctx, p))

	p.MarkWatered(testutil.Day(2025, 1, 5).Add(14 * time.Hour))
	require.NoError(t, repo.Update(ctx, p))

	got, err := repo.GetByID(ctx, "u1", p.ID)
	require.NoError(t, err)
	assert.Equal(t, testutil.Day(2025, 1, 5), got.LastWatered)
	assert.Equal(t, testutil.Day(2025, 1, 12), got.NextWaterDate)
	require.NotNil(t, got.LastWateredAt)
	assert.Equal(t, 14, got.LastWateredAt.Hour())
}

func TestPlantRepo_UpdateMissingIsNotFound(t *testing.T) {
	repo := NewSQLitePlantRepo(testutil.NewTestDB(t))
	p := testutil.NewTestPlant("Pothos", testutil.WithUser("u1"))
	p.ID = "missing"

	assert.ErrorIs(t, repo.Update(context.Background(), p), ErrNotFound)
}

func TestPlantRepo_Delete(t *testing.T) {
	repo := NewSQLitePlantRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	p := testutil.NewTestPlant("Pothos", testutil.WithUser("u1"))
	require.NoError(t, repo.Create(ctx, p))

	assert.ErrorIs(t, repo.Delete(ctx, "u2", p.ID), ErrNotFound)
	require.NoError(t, repo.Delete(ctx, "u1", p.ID))
	_, err := repo.GetByID(ctx, "u1", p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPlantRepo_ForUserScopesEveryCall(t *testing.T) {
	repo := NewSQLitePlantRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	alice := repo.ForUser("alice")
	bob := repo.ForUser("bob")

	p := testutil.NewTestPlant("Pothos")
	require.NoError(t, alice.Create(ctx, p))
	assert.Equal(t, "alice", p.UserID)

	list, err := bob.List(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = bob.Get(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, bob.Delete(ctx, p.ID), ErrNotFound)
}

func TestPlantRepo_RowWithEmptyDatesStillLists(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLitePlantRepo(database)
	ctx := context.Background()

	good := testutil.NewTestPlant("Pothos", testutil.WithUser("u1"))
	require.NoError(t, repo.Create(ctx, good))
	_, err := database.ExecContext(ctx, `INSERT INTO plants
		(id, user_id, plant_name, watering_interval_days, last_watered, next_water_date, status, created_at, updated_at)
		VALUES ('blank', 'u1', 'Ghost', 7, '', '', 'active', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)

	list, err := repo.ListByUser(ctx, "u1", false)
	require.NoError(t, err)
	require.Len(t, list, 2)

	ghost, err := repo.GetByID(ctx, "u1", "blank")
	require.NoError(t, err)
	assert.True(t, ghost.LastWatered.IsZero())
	assert.True(t, ghost.NextWaterDate.IsZero())

	require.NoError(t, repo.Delete(ctx, "u1", "blank"))
}
