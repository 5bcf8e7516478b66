package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/alexanderramin/sprout/internal/contract"
	"github.com/alexanderramin/sprout/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GuestStoreKey is the fixed file name of the serialized guest plant list.
const GuestStoreKey = "guest_plants.json"

// LocalPlantRepo is the guest-session store: one JSON array in a single file.
//
// Storage problems never reach the caller. A missing or corrupt file reads as
// an empty list (a corrupt file is also reset to empty), and a failed write
// is logged and dropped.
type LocalPlantRepo struct {
	path   string
	logger *zap.Logger
	mu     sync.Mutex
}

var _ GuestPlantRepo = (*LocalPlantRepo)(nil)

func NewLocalPlantRepo(path string, logger *zap.Logger) *LocalPlantRepo {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LocalPlantRepo{path: path, logger: logger.Named("guest_store")}
}

// Path is the file backing the store.
func (r *LocalPlantRepo) Path() string {
	return r.path
}

// NewLocalID returns an id in the guest id space.
func NewLocalID() string {
	return "local-" + uuid.New().String()
}

// List returns the guest plants ordered by next watering date. The archive
// flag does not exist for guests, so includeArchived is ignored.
func (r *LocalPlantRepo) List(_ context.Context, _ bool) ([]*domain.Plant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	plants := r.load()
	sortByNextWater(plants)
	return plants, nil
}

func (r *LocalPlantRepo) Get(_ context.Context, id string) (*domain.Plant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.load() {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("plant %s: %w", id, ErrNotFound)
}

// Create appends p under a newly generated local id.
func (r *LocalPlantRepo) Create(_ context.Context, p *domain.Plant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = NewLocalID()
	p.UserID = ""
	p.Status = domain.PlantActive
	plants := r.load()
	r.save(append(plants, p))
	return nil
}

func (r *LocalPlantRepo) Update(_ context.Context, p *domain.Plant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	plants := r.load()
	for i := range plants {
		if plants[i].ID == p.ID {
			plants[i] = p
			r.save(plants)
			return nil
		}
	}
	return fmt.Errorf("plant %s: %w", p.ID, ErrNotFound)
}

func (r *LocalPlantRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	plants := r.load()
	for i := range plants {
		if plants[i].ID == id {
			r.save(append(plants[:i], plants[i+1:]...))
			return nil
		}
	}
	return fmt.Errorf("plant %s: %w", id, ErrNotFound)
}

// Append adds plants in order with fresh local ids, leaving existing entries
// untouched. Used by JSON import.
func (r *LocalPlantRepo) Append(_ context.Context, incoming []*domain.Plant) {
	r.mu.Lock()
	defer r.mu.Unlock()

	plants := r.load()
	for _, p := range incoming {
		p.ID = NewLocalID()
		p.UserID = ""
		if p.Status == "" {
			p.Status = domain.PlantActive
		}
		plants = append(plants, p)
	}
	r.save(plants)
}

// RemoveIDs drops the given ids and keeps everything else in stored order.
func (r *LocalPlantRepo) RemoveIDs(_ context.Context, ids []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	plants := r.load()
	kept := plants[:0]
	for _, p := range plants {
		if !drop[p.ID] {
			kept = append(kept, p)
		}
	}
	r.save(kept)
}

// Clear removes the stored list entirely.
func (r *LocalPlantRepo) Clear(_ context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.Remove(r.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		r.logger.Warn("clearing guest plants failed", zap.String("path", r.path), zap.Error(err))
	}
}

// load reads the stored list in file order. Caller holds mu.
func (r *LocalPlantRepo) load() []*domain.Plant {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			r.logger.Warn("reading guest plants failed", zap.String("path", r.path), zap.Error(err))
		}
		return nil
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}

	var records []contract.PlantRecord
	if err := json.Unmarshal(data, &records); err != nil {
		r.logger.Warn("guest plants corrupt, resetting to empty", zap.String("path", r.path), zap.Error(err))
		r.save(nil)
		return nil
	}

	plants := make([]*domain.Plant, 0, len(records))
	for _, rec := range records {
		plants = append(plants, rec.Plant())
	}
	return plants
}

// save writes the list through a temp file and rename. Caller holds mu.
func (r *LocalPlantRepo) save(plants []*domain.Plant) {
	records := make([]contract.PlantRecord, 0, len(plants))
	for _, p := range plants {
		records = append(records, contract.NewPlantRecord(p))
	}
	data, err := json.Marshal(records)
	if err != nil {
		r.logger.Warn("encoding guest plants failed", zap.Error(err))
		return
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		r.logger.Warn("writing guest plants failed", zap.String("path", r.path), zap.Error(err))
		return
	}
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		r.logger.Warn("writing guest plants failed", zap.String("path", r.path), zap.Error(err))
		return
	}
	if err := os.Rename(tmp, r.path); err != nil {
		_ = os.Remove(tmp)
		r.logger.Warn("writing guest plants failed", zap.String("path", r.path), zap.Error(err))
	}
}

// sortByNextWater orders plants soonest-due first, ties by display name.
func sortByNextWater(plants []*domain.Plant) {
	sort.SliceStable(plants, func(i, j int) bool {
		a, b := plants[i], plants[j]
		if !a.NextWaterDate.Equal(b.NextWaterDate) {
			return a.NextWaterDate.Before(b.NextWaterDate)
		}
		return strings.ToLower(a.DisplayName()) < strings.ToLower(b.DisplayName())
	})
}
