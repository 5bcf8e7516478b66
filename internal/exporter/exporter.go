// Package exporter writes plant lists as CSV for spreadsheets and as JSON in
// the shape the importer reads back.
package exporter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/alexanderramin/sprout/internal/contract"
	"github.com/alexanderramin/sprout/internal/domain"
	"github.com/alexanderramin/sprout/internal/scheduler"
)

// CSVHeader is the fixed column order of the CSV export.
var CSVHeader = []string{
	"Plant Name",
	"Scientific Name",
	"Watering Interval (Days)",
	"Last Watered",
	"Next Water Date",
}

// WriteCSV writes one row per plant after the header. The plant name column
// carries the display name.
func WriteCSV(w io.Writer, plants []*domain.Plant) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, p := range plants {
		row := []string{
			p.DisplayName(),
			p.ScientificName,
			strconv.Itoa(p.WateringIntervalDays),
			scheduler.FormatDate(p.LastWatered),
			scheduler.FormatDate(p.NextWaterDate),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row for %s: %w", p.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

// WriteJSON writes the plants as an indented JSON array of plant records.
func WriteJSON(w io.Writer, plants []*domain.Plant) error {
	records := make([]contract.PlantRecord, 0, len(plants))
	for _, p := range plants {
		records = append(records, contract.NewPlantRecord(p))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encoding plants: %w", err)
	}
	return nil
}
