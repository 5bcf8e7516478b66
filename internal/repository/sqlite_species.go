package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/sprout/internal/db"
	"github.com/alexanderramin/sprout/internal/domain"
)

// SQLiteSpeciesRepo reads the species reference table.
type SQLiteSpeciesRepo struct {
	db db.DBTX
}

func NewSQLiteSpeciesRepo(db db.DBTX) *SQLiteSpeciesRepo {
	return &SQLiteSpeciesRepo{db: db}
}

// List returns species whose name or scientific name contains query
// (case-insensitive), ordered by name. An empty query returns everything.
func (r *SQLiteSpeciesRepo) List(ctx context.Context, query string) ([]domain.Species, error) {
	pattern := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, scientific_name, watering_interval_days
		FROM species
		WHERE LOWER(name) LIKE ? OR LOWER(COALESCE(scientific_name, '')) LIKE ?
		ORDER BY name COLLATE NOCASE`, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("listing species: %w", err)
	}
	defer rows.Close()

	var out []domain.Species
	for rows.Next() {
		s, err := scanSpecies(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating species: %w", err)
	}
	return out, nil
}

func (r *SQLiteSpeciesRepo) GetByName(ctx context.Context, name string) (*domain.Species, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, scientific_name, watering_interval_days
		FROM species WHERE name = ? COLLATE NOCASE`, strings.TrimSpace(name))
	s, err := scanSpecies(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("species %q: %w", name, ErrNotFound)
		}
		return nil, err
	}
	return s, nil
}

func scanSpecies(s rowScanner) (*domain.Species, error) {
	var sp domain.Species
	var scientific sql.NullString
	if err := s.Scan(&sp.ID, &sp.Name, &scientific, &sp.WateringIntervalDays); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning species: %w", err)
	}
	sp.ScientificName = scientific.String
	return &sp, nil
}
