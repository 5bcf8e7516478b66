package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/sprout/internal/catalog"
	"github.com/alexanderramin/sprout/internal/cli"
	"github.com/alexanderramin/sprout/internal/config"
	"github.com/alexanderramin/sprout/internal/db"
	"github.com/alexanderramin/sprout/internal/logging"
	"github.com/alexanderramin/sprout/internal/photo"
	"github.com/alexanderramin/sprout/internal/repository"
	"github.com/alexanderramin/sprout/internal/service"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Settings: defaults < ~/.sprout/config.yaml (or SPROUT_CONFIG) < SPROUT_* env
	dataDir, err := config.DefaultDataDir()
	if err != nil {
		return err
	}
	v, err := config.NewViper(dataDir, os.Getenv("SPROUT_CONFIG"))
	if err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	uow := db.NewSQLiteUnitOfWork(database)

	species, err := catalog.Load()
	if err != nil {
		return err
	}
	if err := db.SeedSpecies(context.Background(), uow, species); err != nil {
		return err
	}

	// Wire repositories
	localRepo := repository.NewLocalPlantRepo(cfg.GuestFile, logger)
	plantRepo := repository.NewSQLitePlantRepo(database)
	speciesRepo := repository.NewSQLiteSpeciesRepo(database)
	logRepo := repository.NewSQLiteWateringLogRepo(database)

	// Wire services
	observer := service.NewLogUseCaseObserver(logger)
	plantSvc := service.NewPlantService(localRepo, plantRepo, speciesRepo, logRepo,
		photo.NewFSPhotoStore(cfg.PhotoDir), logger, observer)

	app := &cli.App{
		Plants:      plantSvc,
		Species:     service.NewSpeciesService(speciesRepo),
		Sync:        service.NewSyncService(localRepo, plantRepo, logger, observer),
		Dashboard:   service.NewDashboardService(plantSvc),
		Transfer:    service.NewTransferService(plantSvc, localRepo, plantRepo, observer),
		Reminders:   service.NewReminderService(plantSvc),
		Session:     cli.NewSessionStore(cfg.SessionFile),
		DefaultUser: cfg.User,
	}

	// Detect interactive terminal for the sync prompt.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	logger.Debug("starting", zap.String("data_dir", cfg.DataDir), zap.String("db", cfg.DBPath))

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
