package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/sprout/internal/domain"
	"github.com/alexanderramin/sprout/internal/scheduler"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestRelativeDay(t *testing.T) {
	today := time.Date(2026, 2, 7, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"today", today.Add(20 * time.Hour), "Today"},
		{"tomorrow", today.AddDate(0, 0, 1), "Tomorrow"},
		{"yesterday", today.AddDate(0, 0, -1), "Yesterday"},
		{"future", today.AddDate(0, 0, 5), "in 5 days"},
		{"past", today.AddDate(0, 0, -12), "12 days ago"},
		{"zero", time.Time{}, "never"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeDay(tt.input, today))
		})
	}
}

func TestHumanDate(t *testing.T) {
	assert.Equal(t, "Sep 30, 2022", HumanDate(time.Date(2022, 9, 30, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "--", HumanDate(time.Time{}))
}

func TestTruncID(t *testing.T) {
	assert.Equal(t, "local-12345678", TruncID("local-1234567890abcdef"))
	assert.Equal(t, "abcdef01", TruncID("abcdef0123456789"))
	assert.Equal(t, "short", TruncID("short"))
}

func TestStatusBadge(t *testing.T) {
	assert.Contains(t, StatusBadge(scheduler.Status{Kind: scheduler.StatusOverdue, Days: 2}), "Overdue by 2 days")
	assert.Contains(t, StatusBadge(scheduler.Status{Kind: scheduler.StatusDueToday}), "Due today")
	assert.Contains(t, StatusBadge(scheduler.Status{Kind: scheduler.StatusUpcoming, Days: 1}), "Due in 1 day")
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable([]string{"A", "B"}, [][]string{{"long value", "x"}, {"s", "y"}})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, lipgloss.Width(lines[2]), lipgloss.Width(lines[3]))
	assert.Empty(t, RenderTable(nil, nil))
}

func TestOwnerBadgeAndPlural(t *testing.T) {
	assert.Contains(t, OwnerBadge(domain.Guest()), "guest")
	assert.Contains(t, OwnerBadge(domain.User("ana")), "ana")
	assert.Equal(t, "1 plant", Plural(1, "plant"))
	assert.Equal(t, "0 plants", Plural(0, "plant"))
}
