package scheduler

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date wire format used for watering dates.
const DateLayout = "2006-01-02"

type StatusKind string

const (
	StatusOverdue  StatusKind = "overdue"
	StatusDueToday StatusKind = "due_today"
	StatusUpcoming StatusKind = "upcoming"
)

// Status is the display status of a plant relative to a given day.
// Days is the number of days past due for StatusOverdue, the number of days
// remaining for StatusUpcoming, and zero for StatusDueToday.
type Status struct {
	Kind StatusKind
	Days int
}

// Label returns a short human-readable description such as "Overdue by 2 days".
func (s Status) Label() string {
	switch s.Kind {
	case StatusOverdue:
		return fmt.Sprintf("Overdue by %s", pluralDays(s.Days))
	case StatusDueToday:
		return "Due today"
	default:
		return fmt.Sprintf("Due in %s", pluralDays(s.Days))
	}
}

func pluralDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

// CalendarDate drops the time of day from t, keeping the year, month and day
// as seen in t's own location. The result is midnight UTC so that day
// arithmetic is never affected by DST transitions.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NextWaterDate adds intervalDays whole calendar days to lastWatered.
// intervalDays must be at least 1; callers validate at input.
func NextWaterDate(lastWatered time.Time, intervalDays int) time.Time {
	return CalendarDate(lastWatered).AddDate(0, 0, intervalDays)
}

// DaysBetween returns the number of calendar days from a to b (negative when b
// is before a).
func DaysBetween(a, b time.Time) int {
	return int(CalendarDate(b).Sub(CalendarDate(a)).Hours() / 24)
}

// ComputeStatus classifies nextWaterDate against today by calendar date only.
func ComputeStatus(nextWaterDate, today time.Time) Status {
	diff := DaysBetween(today, nextWaterDate)
	switch {
	case diff < 0:
		return Status{Kind: StatusOverdue, Days: -diff}
	case diff == 0:
		return Status{Kind: StatusDueToday}
	default:
		return Status{Kind: StatusUpcoming, Days: diff}
	}
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// FormatDate renders t as YYYY-MM-DD, or "" for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return CalendarDate(t).Format(DateLayout)
}
