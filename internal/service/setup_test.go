package service

import (
	"path/filepath"
	"testing"

	"github.com/alexanderramin/sprout/internal/db"
	"github.com/alexanderramin/sprout/internal/photo"
	"github.com/alexanderramin/sprout/internal/repository"
	"github.com/alexanderramin/sprout/internal/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type harness struct {
	local    *repository.LocalPlantRepo
	remote   *repository.SQLitePlantRepo
	species  *repository.SQLiteSpeciesRepo
	logs     *repository.SQLiteWateringLogRepo
	photoDir string
	logger   *zap.Logger
	observed *observer.ObservedLogs

	plants PlantService
}

type harnessOption func(*harnessConfig)

type harnessConfig struct {
	wrapRemote func(db.DBTX) db.DBTX
	wrapLogs   func(db.DBTX) db.DBTX
}

// withRemoteDB swaps the DBTX seen by the remote plant repo.
func withRemoteDB(wrap func(db.DBTX) db.DBTX) harnessOption {
	return func(c *harnessConfig) { c.wrapRemote = wrap }
}

// withLogDB swaps the DBTX seen by the watering log repo.
func withLogDB(wrap func(db.DBTX) db.DBTX) harnessOption {
	return func(c *harnessConfig) { c.wrapLogs = wrap }
}

func newHarness(t *testing.T, opts ...harnessOption) *harness {
	t.Helper()
	cfg := harnessConfig{
		wrapRemote: func(d db.DBTX) db.DBTX { return d },
		wrapLogs:   func(d db.DBTX) db.DBTX { return d },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	database := testutil.NewSeededTestDB(t)
	core, observed := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)
	dir := t.TempDir()

	h := &harness{
		local:    repository.NewLocalPlantRepo(filepath.Join(dir, repository.GuestStoreKey), logger),
		remote:   repository.NewSQLitePlantRepo(cfg.wrapRemote(database)),
		species:  repository.NewSQLiteSpeciesRepo(database),
		logs:     repository.NewSQLiteWateringLogRepo(cfg.wrapLogs(database)),
		photoDir: filepath.Join(dir, "photos"),
		logger:   logger,
		observed: observed,
	}
	h.plants = NewPlantService(h.local, h.remote, h.species, h.logs,
		photo.NewFSPhotoStore(h.photoDir), logger, NewLogUseCaseObserver(logger))
	return h
}
