package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/sprout/internal/scheduler"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

var dateParser = func() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}()

// parseWateringDay accepts YYYY-MM-DD or natural language ("yesterday",
// "last monday", "3 days ago") relative to now. Empty input means now.
// Days after today are rejected.
func parseWateringDay(input string, now time.Time) (time.Time, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return now, nil
	}

	day, err := scheduler.ParseDate(s)
	if err != nil {
		r, werr := dateParser.Parse(s, now)
		if werr != nil {
			return time.Time{}, fmt.Errorf("parsing date %q: %w", input, werr)
		}
		if r == nil {
			return time.Time{}, fmt.Errorf("could not understand date %q (try YYYY-MM-DD or \"yesterday\")", input)
		}
		day = r.Time
	}

	if scheduler.CalendarDate(day).After(scheduler.CalendarDate(now)) {
		return time.Time{}, fmt.Errorf("date %s is in the future", scheduler.FormatDate(day))
	}
	return day, nil
}
