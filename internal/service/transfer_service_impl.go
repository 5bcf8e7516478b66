package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/sprout/internal/contract"
	"github.com/alexanderramin/sprout/internal/domain"
	"github.com/alexanderramin/sprout/internal/exporter"
	"github.com/alexanderramin/sprout/internal/importer"
	"github.com/alexanderramin/sprout/internal/repository"
)

type transferService struct {
	plants   PlantService
	local    repository.GuestPlantRepo
	remote   repository.PlantRepo
	observer UseCaseObserver
	now      func() time.Time
}

func NewTransferService(
	plants PlantService,
	local repository.GuestPlantRepo,
	remote repository.PlantRepo,
	observers ...UseCaseObserver,
) TransferService {
	return &transferService{
		plants:   plants,
		local:    local,
		remote:   remote,
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
	}
}

func (s *transferService) ExportCSV(ctx context.Context, owner domain.Owner, w io.Writer) (int, error) {
	plants, err := s.plants.List(ctx, owner, false)
	if err != nil {
		return 0, err
	}
	if err := exporter.WriteCSV(w, plants); err != nil {
		return 0, err
	}
	return len(plants), nil
}

func (s *transferService) ExportJSON(ctx context.Context, owner domain.Owner, w io.Writer) (int, error) {
	plants, err := s.plants.List(ctx, owner, false)
	if err != nil {
		return 0, err
	}
	if err := exporter.WriteJSON(w, plants); err != nil {
		return 0, err
	}
	return len(plants), nil
}

// ImportJSON appends every entry of a JSON plant array under fresh ids. Guest
// imports land in local storage in one write, as parsed. Account imports are
// inserted one by one with any missing schedule filled in, and stop at the
// first remote failure; rows already inserted stay.
func (s *transferService) ImportJSON(ctx context.Context, owner domain.Owner, r io.Reader) (result *contract.ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"owner": owner.String()}
	defer observe(ctx, s.observer, "import-plants", startedAt, fields, &err)

	plants, err := importer.ParsePlants(r)
	if err != nil {
		return nil, err
	}
	result = &contract.ImportResult{Warnings: importer.Inspect(plants)}
	fields["entries"] = len(plants)

	if owner.IsGuest() {
		s.local.Append(ctx, plants)
		result.Imported = len(plants)
		return result, nil
	}

	for _, p := range plants {
		p.UserID = owner.UserID
		p.Status = domain.PlantActive
		if p.CreatedAt.IsZero() {
			p.CreatedAt = startedAt
		}
		if p.UpdatedAt.IsZero() {
			p.UpdatedAt = startedAt
		}
		p.FillMissingSchedule(s.now())
		if err = s.remote.Create(ctx, p); err != nil {
			return result, &RemoteError{Op: fmt.Sprintf("importing %q", p.DisplayName()), Err: err}
		}
		result.Imported++
	}
	return result, nil
}
