package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/sprout/internal/db"
	"github.com/alexanderramin/sprout/internal/domain"
	"github.com/alexanderramin/sprout/internal/scheduler"
	"github.com/google/uuid"
)

// SQLiteWateringLogRepo is the append-only watering history table.
type SQLiteWateringLogRepo struct {
	db db.DBTX
}

func NewSQLiteWateringLogRepo(db db.DBTX) *SQLiteWateringLogRepo {
	return &SQLiteWateringLogRepo{db: db}
}

func (r *SQLiteWateringLogRepo) Create(ctx context.Context, l *domain.WateringLog) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	query := `INSERT INTO watering_logs (id, plant_id, watered_date, notes, created_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		l.ID,
		l.PlantID,
		scheduler.FormatDate(l.WateredDate),
		l.Notes,
		l.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting watering log: %w", err)
	}
	return nil
}

// ListByPlant returns the plant's waterings, most recent first.
func (r *SQLiteWateringLogRepo) ListByPlant(ctx context.Context, plantID string) ([]*domain.WateringLog, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, plant_id, watered_date, notes, created_at
		FROM watering_logs WHERE plant_id = ? ORDER BY watered_date DESC, created_at DESC`, plantID)
	if err != nil {
		return nil, fmt.Errorf("listing watering logs: %w", err)
	}
	defer rows.Close()

	var logs []*domain.WateringLog
	for rows.Next() {
		var l domain.WateringLog
		var wateredStr, createdStr string
		if err := rows.Scan(&l.ID, &l.PlantID, &wateredStr, &l.Notes, &createdStr); err != nil {
			return nil, fmt.Errorf("scanning watering log: %w", err)
		}
		if l.WateredDate, err = parseDate(wateredStr, "watered_date"); err != nil {
			return nil, err
		}
		if l.CreatedAt, err = parseTimestamp(createdStr, "created_at"); err != nil {
			return nil, err
		}
		logs = append(logs, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating watering logs: %w", err)
	}
	return logs, nil
}
