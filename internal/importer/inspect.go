package importer

import (
	"fmt"

	"github.com/alexanderramin/sprout/internal/domain"
)

// Inspect lists the ways parsed plants look incomplete. Nothing here blocks an
// import; the CLI prints these as warnings.
func Inspect(plants []*domain.Plant) []error {
	var errs []error
	for i, p := range plants {
		label := fmt.Sprintf("entry %d", i+1)
		if p.PlantName != "" {
			label = fmt.Sprintf("entry %d (%s)", i+1, p.DisplayName())
		}

		if p.PlantName == "" {
			errs = append(errs, fmt.Errorf("%s: plantName is missing", label))
		}
		if p.WateringIntervalDays < 1 {
			errs = append(errs, fmt.Errorf("%s: wateringIntervalDays %d is below 1", label, p.WateringIntervalDays))
		}
		if p.LastWatered.IsZero() {
			errs = append(errs, fmt.Errorf("%s: lastWatered is missing or not a date", label))
		}
		if p.NextWaterDate.IsZero() {
			errs = append(errs, fmt.Errorf("%s: nextWaterDate is missing or not a date", label))
		}
	}
	return errs
}
