package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/sprout/internal/domain"
	"github.com/alexanderramin/sprout/internal/photo"
	"github.com/alexanderramin/sprout/internal/repository"
	"github.com/alexanderramin/sprout/internal/scheduler"
	"go.uber.org/zap"
)

type plantService struct {
	local    repository.GuestPlantRepo
	remote   repository.PlantRepo
	species  repository.SpeciesRepo
	logs     repository.WateringLogRepo
	photos   photo.PhotoStore
	logger   *zap.Logger
	observer UseCaseObserver
	now      func() time.Time
}

func NewPlantService(
	local repository.GuestPlantRepo,
	remote repository.PlantRepo,
	species repository.SpeciesRepo,
	logs repository.WateringLogRepo,
	photos photo.PhotoStore,
	logger *zap.Logger,
	observers ...UseCaseObserver,
) PlantService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &plantService{
		local:    local,
		remote:   remote,
		species:  species,
		logs:     logs,
		photos:   photos,
		logger:   logger.Named("plants"),
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
	}
}

// store picks the backing store from the owner passed in, never from session state.
func (s *plantService) store(owner domain.Owner) repository.PlantStore {
	if owner.IsGuest() {
		return s.local
	}
	return repository.ScopeToUser(s.remote, owner.UserID)
}

func (s *plantService) List(ctx context.Context, owner domain.Owner, includeArchived bool) ([]*domain.Plant, error) {
	plants, err := s.store(owner).List(ctx, includeArchived)
	if err != nil {
		return nil, remoteErr(owner, "listing plants", err)
	}
	return plants, nil
}

func (s *plantService) Get(ctx context.Context, owner domain.Owner, id string) (*domain.Plant, error) {
	p, err := s.store(owner).Get(ctx, id)
	if err != nil {
		return nil, remoteErr(owner, "loading plant", err)
	}
	return p, nil
}

func (s *plantService) Add(ctx context.Context, owner domain.Owner, req AddPlantRequest) (p *domain.Plant, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"owner": owner.String()}
	defer observe(ctx, s.observer, "add-plant", startedAt, fields, &err)

	if req.WateringIntervalDays < 0 {
		return nil, fmt.Errorf("%w (got %d)", domain.ErrInvalidInterval, req.WateringIntervalDays)
	}

	name := strings.TrimSpace(req.PlantName)
	scientific := strings.TrimSpace(req.ScientificName)
	interval := req.WateringIntervalDays

	if req.Species != "" {
		sp, err := s.species.GetByName(ctx, req.Species)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, fmt.Errorf("unknown species %q (see 'sprout species list')", req.Species)
			}
			return nil, fmt.Errorf("looking up species: %w", err)
		}
		name = sp.Name
		if scientific == "" {
			scientific = sp.ScientificName
		}
		if interval == 0 {
			interval = sp.WateringIntervalDays
		}
		fields["species"] = sp.Name
	}
	if name == "" {
		return nil, fmt.Errorf("plant name is required")
	}

	// Local wall clock, so "today" is the caller's calendar day.
	lastWatered := req.LastWatered
	if lastWatered.IsZero() {
		lastWatered = s.now()
	}

	p = domain.NewPlant(name, scientific, interval, lastWatered, startedAt)
	p.CustomName = strings.TrimSpace(req.CustomName)

	if err := s.store(owner).Create(ctx, p); err != nil {
		return nil, remoteErr(owner, "adding plant", err)
	}
	fields["plant_id"] = p.ID
	return p, nil
}

// Water marks the plant watered at the given instant. For signed-in users a
// watering log row is appended too; that write is best effort.
func (s *plantService) Water(ctx context.Context, owner domain.Owner, id string, at time.Time) (p *domain.Plant, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"owner": owner.String(), "plant_id": id}
	defer observe(ctx, s.observer, "water-plant", startedAt, fields, &err)

	store := s.store(owner)
	p, err = store.Get(ctx, id)
	if err != nil {
		return nil, remoteErr(owner, "loading plant", err)
	}

	p.MarkWatered(at)
	if err = store.Update(ctx, p); err != nil {
		return nil, remoteErr(owner, "saving watering", err)
	}
	fields["next_water_date"] = scheduler.FormatDate(p.NextWaterDate)

	if !owner.IsGuest() {
		entry := &domain.WateringLog{PlantID: p.ID, WateredDate: p.LastWatered}
		if logErr := s.logs.Create(ctx, entry); logErr != nil {
			s.logger.Warn("recording watering log failed",
				zap.String("plant_id", p.ID),
				zap.String("user_id", owner.UserID),
				zap.Error(logErr),
			)
		}
	}
	return p, nil
}

func (s *plantService) Edit(ctx context.Context, owner domain.Owner, id string, patch domain.PlantPatch) (p *domain.Plant, err error) {
	startedAt := time.Now().UTC()
	defer observe(ctx, s.observer, "edit-plant", startedAt, map[string]any{"owner": owner.String(), "plant_id": id}, &err)

	if patch.PlantName != nil && strings.TrimSpace(*patch.PlantName) == "" {
		return nil, fmt.Errorf("plant name must not be empty")
	}

	store := s.store(owner)
	p, err = store.Get(ctx, id)
	if err != nil {
		return nil, remoteErr(owner, "loading plant", err)
	}
	if err = p.ApplyPatch(patch, startedAt); err != nil {
		return nil, err
	}
	if err = store.Update(ctx, p); err != nil {
		return nil, remoteErr(owner, "saving plant", err)
	}
	return p, nil
}

func (s *plantService) Remove(ctx context.Context, owner domain.Owner, id string) (err error) {
	startedAt := time.Now().UTC()
	defer observe(ctx, s.observer, "remove-plant", startedAt, map[string]any{"owner": owner.String(), "plant_id": id}, &err)

	return remoteErr(owner, "removing plant", s.store(owner).Delete(ctx, id))
}

func (s *plantService) Archive(ctx context.Context, owner domain.Owner, id string) error {
	return s.setStatus(ctx, owner, id, domain.PlantArchived)
}

func (s *plantService) Restore(ctx context.Context, owner domain.Owner, id string) error {
	return s.setStatus(ctx, owner, id, domain.PlantActive)
}

func (s *plantService) setStatus(ctx context.Context, owner domain.Owner, id string, status domain.PlantStatus) (err error) {
	startedAt := time.Now().UTC()
	defer observe(ctx, s.observer, "set-plant-status", startedAt, map[string]any{"owner": owner.String(), "plant_id": id, "status": string(status)}, &err)

	if owner.IsGuest() {
		return ErrGuestUnsupported
	}
	return remoteErr(owner, "updating plant status", s.remote.SetStatus(ctx, owner.UserID, id, status))
}

// SetPhoto attaches a photo. Guest photos are embedded as a data URL; account
// photos are uploaded to the photo store and referenced by URL.
func (s *plantService) SetPhoto(ctx context.Context, owner domain.Owner, id, name string, data []byte) (p *domain.Plant, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"owner": owner.String(), "plant_id": id, "bytes": len(data)}
	defer observe(ctx, s.observer, "set-plant-photo", startedAt, fields, &err)

	if err = photo.Validate(name, data); err != nil {
		return nil, err
	}

	store := s.store(owner)
	p, err = store.Get(ctx, id)
	if err != nil {
		return nil, remoteErr(owner, "loading plant", err)
	}

	var url string
	if owner.IsGuest() {
		url, err = photo.DataURL(name, data)
	} else {
		url, err = s.photos.Put(ctx, owner.UserID, p.ID, name, data)
		err = remoteErr(owner, "uploading photo", err)
	}
	if err != nil {
		return nil, err
	}

	if err = p.ApplyPatch(domain.PlantPatch{PhotoURL: &url}, startedAt); err != nil {
		return nil, err
	}
	if err = store.Update(ctx, p); err != nil {
		return nil, remoteErr(owner, "saving plant", err)
	}
	return p, nil
}

func (s *plantService) History(ctx context.Context, owner domain.Owner, id string) ([]*domain.WateringLog, error) {
	if owner.IsGuest() {
		return nil, ErrGuestUnsupported
	}
	if _, err := s.remote.GetByID(ctx, owner.UserID, id); err != nil {
		return nil, remoteErr(owner, "loading plant", err)
	}
	logs, err := s.logs.ListByPlant(ctx, id)
	if err != nil {
		return nil, remoteErr(owner, "loading watering history", err)
	}
	return logs, nil
}
