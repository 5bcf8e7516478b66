package domain

type PlantStatus string

const (
	PlantActive   PlantStatus = "active"
	PlantArchived PlantStatus = "archived"
)

// DefaultWateringIntervalDays is used for custom plants with no catalog entry.
const DefaultWateringIntervalDays = 7
