package formatter

import (
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/sprout/internal/contract"
	"github.com/alexanderramin/sprout/internal/domain"
	"github.com/alexanderramin/sprout/internal/scheduler"
	"github.com/stretchr/testify/assert"
)

func fixedPlant() *domain.Plant {
	last := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	p := domain.NewPlant("Monstera", "Monstera deliciosa", 7, last, last)
	p.ID = "local-0123456789"
	p.CustomName = "Monty"
	return p
}

func TestFormatPlantList(t *testing.T) {
	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	out := FormatPlantList([]*domain.Plant{fixedPlant()}, today)

	assert.Contains(t, out, "Monty")
	assert.Contains(t, out, "Monstera")
	assert.Contains(t, out, "7d")
	assert.Contains(t, out, "Overdue by 2 days")
}

func TestFormatPlantDetail(t *testing.T) {
	p := fixedPlant()
	p.PhotoURL = "data:image/png;base64,AAAA"
	out := FormatPlantDetail(p, time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC))

	assert.Contains(t, out, "MONTY")
	assert.Contains(t, out, "Monstera deliciosa")
	assert.Contains(t, out, "Mar 8, 2025")
	assert.Contains(t, out, "Due today")
	assert.Contains(t, out, "embedded image/png")
	assert.NotContains(t, out, "AAAA")
}

func TestFormatHistory(t *testing.T) {
	p := fixedPlant()
	assert.Contains(t, FormatHistory(p, nil), "No waterings recorded")

	logs := []*domain.WateringLog{{WateredDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)}}
	assert.Contains(t, FormatHistory(p, logs), "Mar 1, 2025")
}

func TestFormatDashboard(t *testing.T) {
	p := fixedPlant()
	today := time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)
	d := &contract.Dashboard{
		Owner:    domain.Guest(),
		Today:    today,
		Cards:    []contract.PlantCard{{Plant: p, Status: scheduler.ComputeStatus(p.NextWaterDate, today)}},
		Total:    1,
		DueToday: 1,
	}
	out := FormatDashboard(d)
	assert.Contains(t, out, "SPROUT DASHBOARD")
	assert.Contains(t, out, "Due today 1")
	assert.Contains(t, out, "Overdue 0")
	assert.Contains(t, out, "Monty")

	empty := FormatDashboard(&contract.Dashboard{Owner: domain.User("u1"), Today: today})
	assert.Contains(t, empty, "No plants yet")
}

func TestFormatSyncResult(t *testing.T) {
	ok := FormatSyncResult(&contract.SyncResult{Synced: 2})
	assert.Contains(t, ok, "Synced 2 plants")
	assert.NotContains(t, ok, "could not")

	partial := FormatSyncResult(&contract.SyncResult{Synced: 1, Failed: 1, Errors: []error{errors.New("boom")}})
	assert.Contains(t, partial, "1 plant could not be synced")
	assert.Contains(t, partial, "boom")
}
