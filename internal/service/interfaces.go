package service

import (
	"context"
	"io"
	"time"

	"github.com/alexanderramin/sprout/internal/contract"
	"github.com/alexanderramin/sprout/internal/domain"
)

// AddPlantRequest describes a new plant. When Species names a catalog entry
// its name, scientific name and interval are copied onto the plant; a
// positive WateringIntervalDays still overrides the catalog interval.
type AddPlantRequest struct {
	Species              string
	PlantName            string
	ScientificName       string
	CustomName           string
	WateringIntervalDays int
	LastWatered          time.Time
}

// PlantService routes every call to the owner's store: local for guests,
// remote for signed-in users.
type PlantService interface {
	List(ctx context.Context, owner domain.Owner, includeArchived bool) ([]*domain.Plant, error)
	Get(ctx context.Context, owner domain.Owner, id string) (*domain.Plant, error)
	Add(ctx context.Context, owner domain.Owner, req AddPlantRequest) (*domain.Plant, error)
	Water(ctx context.Context, owner domain.Owner, id string, at time.Time) (*domain.Plant, error)
	Edit(ctx context.Context, owner domain.Owner, id string, patch domain.PlantPatch) (*domain.Plant, error)
	Remove(ctx context.Context, owner domain.Owner, id string) error
	Archive(ctx context.Context, owner domain.Owner, id string) error
	Restore(ctx context.Context, owner domain.Owner, id string) error
	SetPhoto(ctx context.Context, owner domain.Owner, id, name string, data []byte) (*domain.Plant, error)
	History(ctx context.Context, owner domain.Owner, id string) ([]*domain.WateringLog, error)
}

type SpeciesService interface {
	List(ctx context.Context, query string) ([]domain.Species, error)
	Get(ctx context.Context, name string) (*domain.Species, error)
}

// SyncService moves guest plants into a signed-in account, once, on request.
type SyncService interface {
	State() SyncState
	OnSignIn(ctx context.Context, owner domain.Owner) (contract.SyncPrompt, error)
	Confirm(ctx context.Context) (*contract.SyncResult, error)
	Decline(ctx context.Context) error
}

type DashboardService interface {
	Build(ctx context.Context, owner domain.Owner, today time.Time) (*contract.Dashboard, error)
}

type TransferService interface {
	ExportCSV(ctx context.Context, owner domain.Owner, w io.Writer) (int, error)
	ExportJSON(ctx context.Context, owner domain.Owner, w io.Writer) (int, error)
	ImportJSON(ctx context.Context, owner domain.Owner, r io.Reader) (*contract.ImportResult, error)
}

type ReminderService interface {
	Due(ctx context.Context, owner domain.Owner, today time.Time) ([]contract.PlantCard, error)
}
