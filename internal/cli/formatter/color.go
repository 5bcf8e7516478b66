package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/sprout/internal/scheduler"
	"github.com/charmbracelet/lipgloss"
)

// Palette. Status colors follow a traffic light; the rest are leaf and soil tones.
var (
	ColorGreen  = lipgloss.Color("#6a994e")
	ColorYellow = lipgloss.Color("#e9c46a")
	ColorRed    = lipgloss.Color("#e76f51")
	ColorBlue   = lipgloss.Color("#4d908e")
	ColorPurple = lipgloss.Color("#9d8189")
	ColorDim    = lipgloss.Color("#8a817c")
	ColorFg     = lipgloss.Color("#f2e8cf")
	ColorHeader = lipgloss.Color("#a7c957")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple).Italic(true)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusColor maps a watering status to its style: overdue red, due today
// yellow, upcoming green.
func StatusColor(kind scheduler.StatusKind) lipgloss.Style {
	switch kind {
	case scheduler.StatusOverdue:
		return StyleRed
	case scheduler.StatusDueToday:
		return StyleYellow
	case scheduler.StatusUpcoming:
		return StyleGreen
	default:
		return StyleDim
	}
}

// StatusBadge renders a colored indicator such as "● Overdue by 2 days".
func StatusBadge(s scheduler.Status) string {
	glyph := "●"
	if s.Kind == scheduler.StatusUpcoming {
		glyph = "○"
	}
	return StatusColor(s.Kind).Render(glyph + " " + s.Label())
}

// Header renders an uppercase section title over a dim rule.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
