package service

import (
	"github.com/alexanderramin/sprout/internal/contract"
	"github.com/alexanderramin/sprout/internal/domain"
	"github.com/alexanderramin/sprout/internal/scheduler"
)

// remoteErr wraps err as a RemoteError unless the owner is a guest.
func remoteErr(owner domain.Owner, op string, err error) error {
	if err == nil || owner.IsGuest() {
		return err
	}
	return &RemoteError{Op: op, Err: err}
}

// aggregateDashboard fills the cards and counters of d from plants, in order.
func aggregateDashboard(d *contract.Dashboard, plants []*domain.Plant) {
	d.Cards = make([]contract.PlantCard, 0, len(plants))
	for _, p := range plants {
		status := p.WaterStatus(d.Today)
		d.Cards = append(d.Cards, contract.PlantCard{Plant: p, Status: status})

		d.Total++
		switch status.Kind {
		case scheduler.StatusDueToday:
			d.DueToday++
		case scheduler.StatusOverdue:
			d.Overdue++
		}
		if p.HasPhoto() {
			d.WithPhoto++
		}
	}
}
