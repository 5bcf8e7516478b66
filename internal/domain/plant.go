package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/sprout/internal/scheduler"
)

// ErrInvalidInterval is returned when a watering interval below one day is supplied.
var ErrInvalidInterval = errors.New("watering interval must be at least 1 day")

type Plant struct {
	ID     string
	UserID string

	PlantName      string
	ScientificName string
	CustomName     string

	WateringIntervalDays int
	LastWatered          time.Time
	LastWateredAt        *time.Time
	NextWaterDate        time.Time

	PhotoURL string
	Status   PlantStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PlantPatch carries the user-editable fields of an edit. Nil fields are left unchanged.
type PlantPatch struct {
	PlantName            *string
	ScientificName       *string
	CustomName           *string
	WateringIntervalDays *int
	PhotoURL             *string
}

// NewPlant builds an active plant watered on lastWatered. A non-positive
// interval falls back to DefaultWateringIntervalDays.
func NewPlant(plantName, scientificName string, intervalDays int, lastWatered time.Time, now time.Time) *Plant {
	if intervalDays < 1 {
		intervalDays = DefaultWateringIntervalDays
	}
	last := scheduler.CalendarDate(lastWatered)
	return &Plant{
		PlantName:            plantName,
		ScientificName:       scientificName,
		WateringIntervalDays: intervalDays,
		LastWatered:          last,
		NextWaterDate:        scheduler.NextWaterDate(last, intervalDays),
		Status:               PlantActive,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

// DisplayName returns the custom nickname when set, otherwise the species name.
func (p *Plant) DisplayName() string {
	if p.CustomName != "" {
		return p.CustomName
	}
	return p.PlantName
}

func (p *Plant) HasPhoto() bool {
	return p.PhotoURL != ""
}

func (p *Plant) IsArchived() bool {
	return p.Status == PlantArchived
}

// MarkWatered records a watering at the given instant and re-derives the next
// due date. Watering twice with the same day yields the same NextWaterDate.
func (p *Plant) MarkWatered(at time.Time) {
	ts := at.UTC()
	p.LastWatered = scheduler.CalendarDate(at)
	p.LastWateredAt = &ts
	p.NextWaterDate = scheduler.NextWaterDate(p.LastWatered, p.WateringIntervalDays)
	p.UpdatedAt = ts
}

// FillMissingSchedule gives a plant that arrived without a usable schedule
// (imported or synced records are not validated) the values a fresh plant
// would get: interval 7, last watered today, next date derived. Fields that
// are already set are kept. Reports whether anything changed.
func (p *Plant) FillMissingSchedule(today time.Time) bool {
	changed := false
	if p.WateringIntervalDays < 1 {
		p.WateringIntervalDays = DefaultWateringIntervalDays
		changed = true
	}
	if p.LastWatered.IsZero() {
		p.LastWatered = scheduler.CalendarDate(today)
		changed = true
	}
	if p.NextWaterDate.IsZero() {
		p.NextWaterDate = scheduler.NextWaterDate(p.LastWatered, p.WateringIntervalDays)
		changed = true
	}
	return changed
}

// SetInterval changes the watering interval and re-derives the next due date.
func (p *Plant) SetInterval(days int, now time.Time) error {
	if days < 1 {
		return fmt.Errorf("%w (got %d)", ErrInvalidInterval, days)
	}
	p.WateringIntervalDays = days
	p.NextWaterDate = scheduler.NextWaterDate(p.LastWatered, days)
	p.UpdatedAt = now
	return nil
}

// ApplyPatch applies an edit. The interval is validated before any field changes.
func (p *Plant) ApplyPatch(patch PlantPatch, now time.Time) error {
	if patch.WateringIntervalDays != nil && *patch.WateringIntervalDays < 1 {
		return fmt.Errorf("%w (got %d)", ErrInvalidInterval, *patch.WateringIntervalDays)
	}
	if patch.PlantName != nil {
		p.PlantName = *patch.PlantName
	}
	if patch.ScientificName != nil {
		p.ScientificName = *patch.ScientificName
	}
	if patch.CustomName != nil {
		p.CustomName = *patch.CustomName
	}
	if patch.PhotoURL != nil {
		p.PhotoURL = *patch.PhotoURL
	}
	if patch.WateringIntervalDays != nil {
		return p.SetInterval(*patch.WateringIntervalDays, now)
	}
	p.UpdatedAt = now
	return nil
}

// WaterStatus classifies the plant against today.
func (p *Plant) WaterStatus(today time.Time) scheduler.Status {
	return scheduler.ComputeStatus(p.NextWaterDate, today)
}
