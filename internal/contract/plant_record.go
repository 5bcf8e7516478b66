package contract

import (
	"time"

	"github.com/alexanderramin/sprout/internal/domain"
	"github.com/alexanderramin/sprout/internal/scheduler"
)

// PlantRecord is the serialized plant shape shared by the guest store, JSON
// export and JSON import. It mirrors the remote row minus userId and status.
type PlantRecord struct {
	ID                   string `json:"id"`
	PlantName            string `json:"plantName"`
	ScientificName       string `json:"scientificName,omitempty"`
	CustomName           string `json:"customName,omitempty"`
	WateringIntervalDays int    `json:"wateringIntervalDays"`
	LastWatered          string `json:"lastWatered"`
	LastWateredTimestamp string `json:"lastWateredTimestamp,omitempty"`
	NextWaterDate        string `json:"nextWaterDate"`
	PhotoURL             string `json:"photoUrl,omitempty"`
	CreatedAt            string `json:"createdAt,omitempty"`
	UpdatedAt            string `json:"updatedAt,omitempty"`
}

// NewPlantRecord converts a plant to its serialized form.
func NewPlantRecord(p *domain.Plant) PlantRecord {
	rec := PlantRecord{
		ID:                   p.ID,
		PlantName:            p.PlantName,
		ScientificName:       p.ScientificName,
		CustomName:           p.CustomName,
		WateringIntervalDays: p.WateringIntervalDays,
		LastWatered:          scheduler.FormatDate(p.LastWatered),
		NextWaterDate:        scheduler.FormatDate(p.NextWaterDate),
		PhotoURL:             p.PhotoURL,
		CreatedAt:            formatTimestamp(p.CreatedAt),
		UpdatedAt:            formatTimestamp(p.UpdatedAt),
	}
	if p.LastWateredAt != nil {
		rec.LastWateredTimestamp = formatTimestamp(*p.LastWateredAt)
	}
	return rec
}

// Plant converts the record back to a guest plant. Unparseable dates become
// the zero time rather than an error; records are trusted as stored. A missing
// next-water date is derived from lastWatered when both inputs are usable.
func (r PlantRecord) Plant() *domain.Plant {
	p := &domain.Plant{
		ID:                   r.ID,
		PlantName:            r.PlantName,
		ScientificName:       r.ScientificName,
		CustomName:           r.CustomName,
		WateringIntervalDays: r.WateringIntervalDays,
		LastWatered:          parseDate(r.LastWatered),
		NextWaterDate:        parseDate(r.NextWaterDate),
		PhotoURL:             r.PhotoURL,
		Status:               domain.PlantActive,
		CreatedAt:            parseTimestamp(r.CreatedAt),
		UpdatedAt:            parseTimestamp(r.UpdatedAt),
	}
	if ts := parseTimestamp(r.LastWateredTimestamp); !ts.IsZero() {
		p.LastWateredAt = &ts
	}
	if p.NextWaterDate.IsZero() && !p.LastWatered.IsZero() && p.WateringIntervalDays >= 1 {
		p.NextWaterDate = scheduler.NextWaterDate(p.LastWatered, p.WateringIntervalDays)
	}
	return p
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func parseDate(s string) time.Time {
	if t, err := time.Parse(scheduler.DateLayout, s); err == nil {
		return t
	}
	// Older exports wrote full timestamps.
	if t := parseTimestamp(s); !t.IsZero() {
		return scheduler.CalendarDate(t)
	}
	return time.Time{}
}
