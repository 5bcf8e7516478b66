package db

import (
	"context"
	"fmt"

	"github.com/alexanderramin/sprout/internal/domain"
)

// SeedSpecies upserts the catalog into the species table in one transaction.
// Rows are keyed by name so re-seeding refreshes intervals without
// duplicating entries. Existing plants keep the interval they were created with.
func SeedSpecies(ctx context.Context, uow UnitOfWork, species []domain.Species) error {
	return uow.WithinTx(ctx, func(ctx context.Context, tx DBTX) error {
		for _, s := range species {
			_, err := tx.ExecContext(ctx, `INSERT INTO species (id, name, scientific_name, watering_interval_days)
				VALUES (?, ?, ?, ?)
				ON CONFLICT(name) DO UPDATE SET
					scientific_name = excluded.scientific_name,
					watering_interval_days = excluded.watering_interval_days`,
				s.ID, s.Name, nullIfEmpty(s.ScientificName), s.WateringIntervalDays,
			)
			if err != nil {
				return fmt.Errorf("seeding species %q: %w", s.Name, err)
			}
		}
		return nil
	})
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
