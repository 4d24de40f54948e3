package period

import (
	"errors"
	"fmt"
	"time"
)

// ErrDayOutOfRange is returned when a day-of-month does not exist in the target month.
var ErrDayOutOfRange = errors.New("day is out of range for month")

// BeginningOfMonth returns the first instant of t's month.
func BeginningOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// BeginningOfQuarter returns the first instant of the quarter containing t.
func BeginningOfQuarter(t time.Time) time.Time {
	return time.Date(t.Year(), quarterStartMonth(t.Month()), 1, 0, 0, 0, 0, t.Location())
}

// BeginningOfNextMonth returns the first instant of the month after t's month.
func BeginningOfNextMonth(t time.Time) time.Time {
	year, month := t.Year(), t.Month()+1
	if t.Month() == time.December {
		year, month = t.Year()+1, time.January
	}
	return time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
}

// BeginningOfNextQuarter returns the first instant of the quarter after the one containing t.
func BeginningOfNextQuarter(t time.Time) time.Time {
	year, month := t.Year(), quarterStartMonth(t.Month())+3
	if month > time.December {
		year, month = t.Year()+1, time.January
	}
	return time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last microsecond of t's month.
func EndOfMonth(t time.Time) time.Time {
	return BeginningOfNextMonth(t).Add(-time.Microsecond)
}

// EndOfQuarter returns the last microsecond of the quarter containing t.
func EndOfQuarter(t time.Time) time.Time {
	return BeginningOfNextQuarter(t).Add(-time.Microsecond)
}

// ThisTimeLastMonth returns the same day and time one month earlier.
// The day is not clamped to the length of the previous month: March 31
// has no counterpart in February and yields ErrDayOutOfRange.
func ThisTimeLastMonth(t time.Time) (time.Time, error) {
	year, month := t.Year(), t.Month()-1
	if t.Month() == time.January {
		year, month = t.Year()-1, time.December
	}
	if t.Day() > daysIn(year, month) {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrDayOutOfRange, year, int(month), t.Day())
	}
	return time.Date(year, month, t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location()), nil
}

func quarterStartMonth(m time.Month) time.Month {
	return (m-1)/3*3 + 1
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
