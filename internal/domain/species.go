package domain

// Species is a read-only catalog entry with its default watering interval.
type Species struct {
	ID                   string
	Name                 string
	ScientificName       string
	WateringIntervalDays int
}
