package period

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Range is a reporting window. Start is inclusive, End is the last instant covered.
type Range struct {
	Start time.Time
	End   time.Time
}

// Label renders the range for file names.
func (r Range) Label() string {
	return fmt.Sprintf("%s_%s", r.Start.Format(dateLayout), r.End.Format(dateLayout))
}

// MonthToDate covers the current month up to now.
func MonthToDate(now time.Time) Range {
	return Range{Start: BeginningOfMonth(now), End: now}
}

// QuarterToDate covers the current quarter up to now.
func QuarterToDate(now time.Time) Range {
	return Range{Start: BeginningOfQuarter(now), End: now}
}

// LastMonth covers the whole calendar month before now's month.
func LastMonth(now time.Time) (Range, error) {
	oneMonthAgo, err := ThisTimeLastMonth(now)
	if err != nil {
		return Range{}, fmt.Errorf("last month: %w", err)
	}
	return Range{Start: BeginningOfMonth(oneMonthAgo), End: EndOfMonth(oneMonthAgo)}, nil
}

// LastQuarter covers the whole quarter before now's quarter. It steps back one
// month at a time until it leaves the current quarter.
func LastQuarter(now time.Time) (Range, error) {
	currentStart := BeginningOfQuarter(now)
	t, err := ThisTimeLastMonth(now)
	if err != nil {
		return Range{}, fmt.Errorf("last quarter: %w", err)
	}
	for i := 0; i < 3 && !t.Before(currentStart); i++ {
		t, err = ThisTimeLastMonth(t)
		if err != nil {
			return Range{}, fmt.Errorf("last quarter: %w", err)
		}
	}
	return Range{Start: BeginningOfQuarter(t), End: EndOfQuarter(t)}, nil
}
