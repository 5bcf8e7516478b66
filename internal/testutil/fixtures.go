package testutil

import (
	"time"

	"github.com/alexanderramin/sprout/internal/domain"
	"github.com/alexanderramin/sprout/internal/scheduler"
)

// Day returns midnight UTC of the given date.
func Day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Plant options
type PlantOption func(*domain.Plant)

func WithInterval(days int) PlantOption {
	return func(p *domain.Plant) {
		p.WateringIntervalDays = days
		p.NextWaterDate = scheduler.NextWaterDate(p.LastWatered, days)
	}
}

// WithLastWatered sets the last watering day and re-derives the next one.
func WithLastWatered(d time.Time) PlantOption {
	return func(p *domain.Plant) {
		p.LastWatered = scheduler.CalendarDate(d)
		p.NextWaterDate = scheduler.NextWaterDate(p.LastWatered, p.WateringIntervalDays)
	}
}

func WithCustomName(name string) PlantOption {
	return func(p *domain.Plant) {
		p.CustomName = name
	}
}

func WithScientificName(name string) PlantOption {
	return func(p *domain.Plant) {
		p.ScientificName = name
	}
}

func WithPhoto(url string) PlantOption {
	return func(p *domain.Plant) {
		p.PhotoURL = url
	}
}

func WithUser(userID string) PlantOption {
	return func(p *domain.Plant) {
		p.UserID = userID
	}
}

// NewTestPlant builds an active plant watered today with a 7-day interval.
func NewTestPlant(name string, opts ...PlantOption) *domain.Plant {
	now := time.Now().UTC()
	p := domain.NewPlant(name, "", domain.DefaultWateringIntervalDays, now, now)
	for _, opt := range opts {
		opt(p)
	}
	return p
}
