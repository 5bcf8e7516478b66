package service

import (
	"context"
	"time"

	"github.com/alexanderramin/sprout/internal/contract"
	"github.com/alexanderramin/sprout/internal/domain"
	"github.com/alexanderramin/sprout/internal/scheduler"
)

type dashboardService struct {
	plants PlantService
}

func NewDashboardService(plants PlantService) DashboardService {
	return &dashboardService{plants: plants}
}

// Build fetches the owner's active plants fresh and classifies each against today.
func (s *dashboardService) Build(ctx context.Context, owner domain.Owner, today time.Time) (*contract.Dashboard, error) {
	plants, err := s.plants.List(ctx, owner, false)
	if err != nil {
		return nil, err
	}
	d := &contract.Dashboard{Owner: owner, Today: scheduler.CalendarDate(today)}
	aggregateDashboard(d, plants)
	return d, nil
}
