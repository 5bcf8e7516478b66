package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/sprout/internal/domain"
	"github.com/alexanderramin/sprout/internal/scheduler"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// RelativeDay describes a calendar day relative to today: "Today",
// "Yesterday", "3 days ago", "in 5 days".
func RelativeDay(day, today time.Time) string {
	if day.IsZero() {
		return "never"
	}
	n := scheduler.DaysBetween(today, day)
	switch {
	case n == 0:
		return "Today"
	case n == 1:
		return "Tomorrow"
	case n == -1:
		return "Yesterday"
	case n > 1:
		return fmt.Sprintf("in %d days", n)
	default:
		return fmt.Sprintf("%d days ago", -n)
	}
}

// HumanDate renders a calendar day as "Mar 4, 2025", or "--" for zero.
func HumanDate(t time.Time) string {
	if t.IsZero() {
		return "--"
	}
	return t.Format("Jan 2, 2006")
}

// TruncID shortens an id for tables. Local ids keep their "local-" prefix.
func TruncID(id string) string {
	prefix := ""
	if rest, ok := strings.CutPrefix(id, "local-"); ok {
		prefix, id = "local-", rest
	}
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(prefix + id)
}

// OwnerBadge labels whose plants are shown.
func OwnerBadge(owner domain.Owner) string {
	if owner.IsGuest() {
		return StylePurple.Render("guest session")
	}
	return StyleBlue.Render("signed in as " + owner.UserID)
}

// Plural renders "1 plant" or "3 plants".
func Plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
