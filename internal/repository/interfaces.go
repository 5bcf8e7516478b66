package repository

import (
	"context"

	"github.com/alexanderramin/sprout/internal/domain"
)

// PlantStore is one physical backing store for plant records, already scoped
// to a single owner. Create assigns a fresh id in the store's own id space.
type PlantStore interface {
	List(ctx context.Context, includeArchived bool) ([]*domain.Plant, error)
	Get(ctx context.Context, id string) (*domain.Plant, error)
	Create(ctx context.Context, p *domain.Plant) error
	Update(ctx context.Context, p *domain.Plant) error
	Delete(ctx context.Context, id string) error
}

// GuestPlantRepo is the guest-local store plus the bulk operations used by
// import and sync.
type GuestPlantRepo interface {
	PlantStore
	Append(ctx context.Context, plants []*domain.Plant)
	RemoveIDs(ctx context.Context, ids []string)
	Clear(ctx context.Context)
}

// PlantRepo is the remote plant table. Every call names the owning user.
type PlantRepo interface {
	ListByUser(ctx context.Context, userID string, includeArchived bool) ([]*domain.Plant, error)
	GetByID(ctx context.Context, userID, id string) (*domain.Plant, error)
	Create(ctx context.Context, p *domain.Plant) error
	Update(ctx context.Context, p *domain.Plant) error
	SetStatus(ctx context.Context, userID, id string, status domain.PlantStatus) error
	Delete(ctx context.Context, userID, id string) error
}

type SpeciesRepo interface {
	List(ctx context.Context, query string) ([]domain.Species, error)
	GetByName(ctx context.Context, name string) (*domain.Species, error)
}

type WateringLogRepo interface {
	Create(ctx context.Context, l *domain.WateringLog) error
	ListByPlant(ctx context.Context, plantID string) ([]*domain.WateringLog, error)
}
