package contract

import (
	"time"

	"github.com/alexanderramin/sprout/internal/domain"
	"github.com/alexanderramin/sprout/internal/scheduler"
)

// PlantCard is one plant as shown on the dashboard, with its status as of
// the dashboard's day.
type PlantCard struct {
	Plant  *domain.Plant
	Status scheduler.Status
}

// Dashboard is the composed view for one owner on one calendar day.
type Dashboard struct {
	Owner domain.Owner
	Today time.Time
	Cards []PlantCard

	Total     int
	DueToday  int
	Overdue   int
	WithPhoto int
}
