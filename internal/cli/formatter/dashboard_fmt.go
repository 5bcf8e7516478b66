package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/sprout/internal/contract"
)

// FormatDashboard renders the counters followed by one line per plant card.
func FormatDashboard(d *contract.Dashboard) string {
	var b strings.Builder

	b.WriteString(Header("sprout dashboard"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s  %s\n\n", OwnerBadge(d.Owner), Dim(HumanDate(d.Today)))

	stats := []string{
		fmt.Sprintf("%s %d", Dim("Plants"), d.Total),
		StyleYellow.Render(fmt.Sprintf("Due today %d", d.DueToday)),
		StyleRed.Render(fmt.Sprintf("Overdue %d", d.Overdue)),
		fmt.Sprintf("%s %d", Dim("With photo"), d.WithPhoto),
	}
	b.WriteString(RenderBox("", strings.Join(stats, "    ")))
	b.WriteString("\n\n")

	if len(d.Cards) == 0 {
		b.WriteString(Dim("No plants yet. Add one with 'sprout add'."))
		b.WriteString("\n")
		return b.String()
	}

	rows := make([][]string, 0, len(d.Cards))
	for _, c := range d.Cards {
		photo := ""
		if c.Plant.HasPhoto() {
			photo = "▣"
		}
		rows = append(rows, []string{
			TruncID(c.Plant.ID),
			Bold(c.Plant.DisplayName()),
			StatusBadge(c.Status),
			Dim("next " + HumanDate(c.Plant.NextWaterDate)),
			photo,
		})
	}
	b.WriteString(RenderTable([]string{"ID", "PLANT", "STATUS", "NEXT", ""}, rows))
	return b.String()
}

// FormatReminders renders the plants needing water today.
func FormatReminders(cards []contract.PlantCard) string {
	if len(cards) == 0 {
		return StyleGreen.Render("Nothing to water today.")
	}
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Needs water (%d)", len(cards))))
	b.WriteString("\n")
	for _, c := range cards {
		fmt.Fprintf(&b, "  %s  %s  %s\n", StatusBadge(c.Status), Bold(c.Plant.DisplayName()), TruncID(c.Plant.ID))
	}
	return b.String()
}
