package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/sprout/internal/db"
	"github.com/alexanderramin/sprout/internal/domain"
	"github.com/alexanderramin/sprout/internal/scheduler"
	"github.com/google/uuid"
)

// plantColumns is the canonical SELECT column list for plants.
const plantColumns = `id, user_id, plant_name, scientific_name, custom_name,
		watering_interval_days, last_watered, last_watered_timestamp, next_water_date,
		photo_url, status, created_at, updated_at`

// SQLitePlantRepo implements PlantRepo against the remote plants table.
type SQLitePlantRepo struct {
	db db.DBTX
}

func NewSQLitePlantRepo(db db.DBTX) *SQLitePlantRepo {
	return &SQLitePlantRepo{db: db}
}

// ForUser returns a PlantStore view of the rows owned by userID.
func (r *SQLitePlantRepo) ForUser(userID string) PlantStore {
	return ScopeToUser(r, userID)
}

// Create inserts p with a newly assigned server id, overwriting any id the
// caller set.
func (r *SQLitePlantRepo) Create(ctx context.Context, p *domain.Plant) error {
	if p.UserID == "" {
		return fmt.Errorf("inserting plant: user id is required")
	}
	p.ID = uuid.New().String()
	if p.Status == "" {
		p.Status = domain.PlantActive
	}

	query := `INSERT INTO plants (` + plantColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.UserID,
		p.PlantName,
		nullableString(p.ScientificName),
		nullableString(p.CustomName),
		p.WateringIntervalDays,
		scheduler.FormatDate(p.LastWatered),
		nullableTimeToString(p.LastWateredAt, time.RFC3339),
		scheduler.FormatDate(p.NextWaterDate),
		nullableString(p.PhotoURL),
		string(p.Status),
		p.CreatedAt.UTC().Format(time.RFC3339),
		p.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting plant: %w", err)
	}
	return nil
}

func (r *SQLitePlantRepo) GetByID(ctx context.Context, userID, id string) (*domain.Plant, error) {
	query := `SELECT ` + plantColumns + ` FROM plants WHERE id = ? AND user_id = ?`
	row := r.db.QueryRowContext(ctx, query, id, userID)
	p, err := scanPlant(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("plant %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return p, nil
}

// ListByUser returns the user's plants ordered by next watering date, soonest
// first, ties by display name.
func (r *SQLitePlantRepo) ListByUser(ctx context.Context, userID string, includeArchived bool) ([]*domain.Plant, error) {
	query := `SELECT ` + plantColumns + ` FROM plants WHERE user_id = ?`
	if !includeArchived {
		query += ` AND status = 'active'`
	}
	query += ` ORDER BY next_water_date, COALESCE(NULLIF(custom_name, ''), plant_name) COLLATE NOCASE, created_at`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing plants: %w", err)
	}
	defer rows.Close()

	var plants []*domain.Plant
	for rows.Next() {
		p, err := scanPlant(rows)
		if err != nil {
			return nil, err
		}
		plants = append(plants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plants: %w", err)
	}
	return plants, nil
}

func (r *SQLitePlantRepo) Update(ctx context.Context, p *domain.Plant) error {
	query := `UPDATE plants SET plant_name = ?, scientific_name = ?, custom_name = ?,
		watering_interval_days = ?, last_watered = ?, last_watered_timestamp = ?, next_water_date = ?,
		photo_url = ?, status = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.PlantName,
		nullableString(p.ScientificName),
		nullableString(p.CustomName),
		p.WateringIntervalDays,
		scheduler.FormatDate(p.LastWatered),
		nullableTimeToString(p.LastWateredAt, time.RFC3339),
		scheduler.FormatDate(p.NextWaterDate),
		nullableString(p.PhotoURL),
		string(p.Status),
		p.UpdatedAt.UTC().Format(time.RFC3339),
		p.ID,
		p.UserID,
	)
	if err != nil {
		return fmt.Errorf("updating plant: %w", err)
	}
	return checkAffected(res, "plant "+p.ID)
}

// SetStatus toggles the soft-delete flag.
func (r *SQLitePlantRepo) SetStatus(ctx context.Context, userID, id string, status domain.PlantStatus) error {
	query := `UPDATE plants SET status = ?, updated_at = ? WHERE id = ? AND user_id = ?`
	res, err := r.db.ExecContext(ctx, query, string(status), time.Now().UTC().Format(time.RFC3339), id, userID)
	if err != nil {
		return fmt.Errorf("setting plant status: %w", err)
	}
	return checkAffected(res, "plant "+id)
}

func (r *SQLitePlantRepo) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM plants WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("deleting plant: %w", err)
	}
	return checkAffected(res, "plant "+id)
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlant(s rowScanner) (*domain.Plant, error) {
	var p domain.Plant
	var scientific, custom, lastWateredTS, photo sql.NullString
	var lastWatered, nextWater, status, createdAt, updatedAt string

	err := s.Scan(
		&p.ID, &p.UserID, &p.PlantName, &scientific, &custom,
		&p.WateringIntervalDays, &lastWatered, &lastWateredTS, &nextWater,
		&photo, &status, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning plant: %w", err)
	}

	p.ScientificName = scientific.String
	p.CustomName = custom.String
	p.PhotoURL = photo.String
	p.Status = domain.PlantStatus(status)
	p.LastWateredAt = parseNullableTime(lastWateredTS, time.RFC3339)

	if p.LastWatered, err = parseDate(lastWatered, "last_watered"); err != nil {
		return nil, err
	}
	if p.NextWaterDate, err = parseDate(nextWater, "next_water_date"); err != nil {
		return nil, err
	}
	if p.CreatedAt, err = parseTimestamp(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if p.UpdatedAt, err = parseTimestamp(updatedAt, "updated_at"); err != nil {
		return nil, err
	}
	return &p, nil
}

// ScopeToUser adapts a user-keyed PlantRepo to a PlantStore bound to userID.
func ScopeToUser(repo PlantRepo, userID string) PlantStore {
	return &userPlantStore{repo: repo, userID: userID}
}

type userPlantStore struct {
	repo   PlantRepo
	userID string
}

func (s *userPlantStore) List(ctx context.Context, includeArchived bool) ([]*domain.Plant, error) {
	return s.repo.ListByUser(ctx, s.userID, includeArchived)
}

func (s *userPlantStore) Get(ctx context.Context, id string) (*domain.Plant, error) {
	return s.repo.GetByID(ctx, s.userID, id)
}

func (s *userPlantStore) Create(ctx context.Context, p *domain.Plant) error {
	p.UserID = s.userID
	return s.repo.Create(ctx, p)
}

func (s *userPlantStore) Update(ctx context.Context, p *domain.Plant) error {
	p.UserID = s.userID
	return s.repo.Update(ctx, p)
}

func (s *userPlantStore) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, s.userID, id)
}
