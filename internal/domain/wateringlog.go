package domain

import "time"

// WateringLog is an append-only audit row written on each "water now".
type WateringLog struct {
	ID          string
	PlantID     string
	WateredDate time.Time
	Notes       string
	CreatedAt   time.Time
}
