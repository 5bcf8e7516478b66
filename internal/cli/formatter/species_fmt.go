package formatter

import (
	"strconv"

	"github.com/alexanderramin/sprout/internal/domain"
)

func FormatSpeciesList(species []domain.Species) string {
	rows := make([][]string, 0, len(species))
	for _, s := range species {
		rows = append(rows, []string{
			Bold(s.Name),
			StylePurple.Render(s.ScientificName),
			strconv.Itoa(s.WateringIntervalDays) + "d",
		})
	}
	return RenderTable([]string{"NAME", "SCIENTIFIC NAME", "EVERY"}, rows)
}
