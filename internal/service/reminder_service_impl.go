package service

import (
	"context"
	"sort"
	"time"

	"github.com/alexanderramin/sprout/internal/contract"
	"github.com/alexanderramin/sprout/internal/domain"
	"github.com/alexanderramin/sprout/internal/scheduler"
)

type reminderService struct {
	plants PlantService
}

func NewReminderService(plants PlantService) ReminderService {
	return &reminderService{plants: plants}
}

// Due returns the plants needing water today, most overdue first.
func (s *reminderService) Due(ctx context.Context, owner domain.Owner, today time.Time) ([]contract.PlantCard, error) {
	plants, err := s.plants.List(ctx, owner, false)
	if err != nil {
		return nil, err
	}

	var due []contract.PlantCard
	for _, p := range plants {
		status := p.WaterStatus(today)
		if status.Kind == scheduler.StatusUpcoming {
			continue
		}
		due = append(due, contract.PlantCard{Plant: p, Status: status})
	}
	sort.SliceStable(due, func(i, j int) bool {
		return due[i].Plant.NextWaterDate.Before(due[j].Plant.NextWaterDate)
	})
	return due, nil
}
