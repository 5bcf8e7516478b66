package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/sprout/internal/domain"
)

// FormatPlantList renders plants as a table with their status as of today.
func FormatPlantList(plants []*domain.Plant, today time.Time) string {
	headers := []string{"ID", "NAME", "SPECIES", "EVERY", "LAST WATERED", "STATUS"}
	rows := make([][]string, 0, len(plants))
	for _, p := range plants {
		status := StatusBadge(p.WaterStatus(today))
		if p.IsArchived() {
			status = Dim("archived")
		}
		rows = append(rows, []string{
			TruncID(p.ID),
			Bold(p.DisplayName()),
			speciesLabel(p),
			fmt.Sprintf("%dd", p.WateringIntervalDays),
			RelativeDay(p.LastWatered, today),
			status,
		})
	}
	return RenderTable(headers, rows)
}

// FormatPlantDetail renders a single plant card with all stored fields.
func FormatPlantDetail(p *domain.Plant, today time.Time) string {
	var b strings.Builder
	line := func(label, value string) {
		fmt.Fprintf(&b, "%s %s\n", StyleDim.Render(fmt.Sprintf("%-15s", label)), value)
	}

	line("ID", p.ID)
	if p.CustomName != "" {
		line("Species name", p.PlantName)
	}
	if p.ScientificName != "" {
		line("Scientific", StylePurple.Render(p.ScientificName))
	}
	line("Water every", Plural(p.WateringIntervalDays, "day"))
	line("Last watered", fmt.Sprintf("%s (%s)", HumanDate(p.LastWatered), RelativeDay(p.LastWatered, today)))
	line("Next watering", HumanDate(p.NextWaterDate))
	line("Status", StatusBadge(p.WaterStatus(today)))
	if p.IsArchived() {
		line("Archived", "yes")
	}
	if p.HasPhoto() {
		line("Photo", photoLabel(p.PhotoURL))
	}
	return RenderBox(p.DisplayName(), strings.TrimRight(b.String(), "\n"))
}

// FormatWatered is the confirmation printed after watering.
func FormatWatered(p *domain.Plant, today time.Time) string {
	return fmt.Sprintf("%s Watered %s. Next watering %s (%s).",
		StyleGreen.Render("✔"),
		Bold(p.DisplayName()),
		HumanDate(p.NextWaterDate),
		RelativeDay(p.NextWaterDate, today),
	)
}

// FormatHistory renders a plant's watering log, newest first.
func FormatHistory(p *domain.Plant, logs []*domain.WateringLog) string {
	if len(logs) == 0 {
		return fmt.Sprintf("No waterings recorded for %s yet.", p.DisplayName())
	}
	rows := make([][]string, 0, len(logs))
	for _, l := range logs {
		rows = append(rows, []string{HumanDate(l.WateredDate), l.Notes})
	}
	return Header(p.DisplayName()+" watering history") + "\n" + RenderTable([]string{"DATE", "NOTES"}, rows)
}

func speciesLabel(p *domain.Plant) string {
	if p.CustomName == "" {
		if p.ScientificName != "" {
			return StylePurple.Render(p.ScientificName)
		}
		return Dim("--")
	}
	return p.PlantName
}

// photoLabel keeps inline data URLs from flooding the terminal.
func photoLabel(url string) string {
	if strings.HasPrefix(url, "data:") {
		mediaType, _, _ := strings.Cut(strings.TrimPrefix(url, "data:"), ";")
		return Dim("embedded " + mediaType + ", " + strconv.Itoa(len(url)) + " chars")
	}
	return url
}
