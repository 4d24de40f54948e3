package period

import (
	"errors"
	"testing"
	"time"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestBeginningOfMonth(t *testing.T) {
	got := BeginningOfMonth(time.Date(2022, 5, 15, 13, 45, 10, 500, time.UTC))
	if want := date(2022, 5, 1); !got.Equal(want) {
		t.Fatalf("beginning of month mismatch: %s != %s", got, want)
	}
}

func TestBeginningOfMonthKeepsYearAndMonth(t *testing.T) {
	for d := date(2021, 12, 1); d.Before(date(2024, 3, 1)); d = d.AddDate(0, 0, 5) {
		got := BeginningOfMonth(d)
		if got.Day() != 1 || got.Month() != d.Month() || got.Year() != d.Year() {
			t.Fatalf("beginning of month for %s: %s", d, got)
		}
		if !got.Equal(time.Date(got.Year(), got.Month(), 1, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("beginning of month not midnight: %s", got)
		}
	}
}

func TestEndOfMonth(t *testing.T) {
	got := EndOfMonth(date(2022, 5, 15))
	want := time.Date(2022, 5, 31, 23, 59, 59, 999999000, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("end of month mismatch: %s != %s", got, want)
	}
}

func TestEndOfMonthSameMonth(t *testing.T) {
	for d := date(2023, 1, 1); d.Year() == 2023 || d.Year() == 2024; d = d.AddDate(0, 0, 7) {
		got := EndOfMonth(BeginningOfMonth(d))
		if got.Month() != d.Month() || got.Year() != d.Year() {
			t.Fatalf("end of month for %s left the month: %s", d, got)
		}
	}
}

func TestEndOfMonthLeapYear(t *testing.T) {
	got := EndOfMonth(date(2024, 2, 3))
	if got.Day() != 29 {
		t.Fatalf("expected Feb 29 in leap year, got %s", got)
	}
	got = EndOfMonth(date(2023, 2, 3))
	if got.Day() != 28 {
		t.Fatalf("expected Feb 28, got %s", got)
	}
}

func TestBeginningOfNextMonthDecember(t *testing.T) {
	got := BeginningOfNextMonth(time.Date(2022, 12, 31, 23, 0, 0, 0, time.UTC))
	if want := date(2023, 1, 1); !got.Equal(want) {
		t.Fatalf("next month rollover mismatch: %s != %s", got, want)
	}
}

func TestBeginningOfQuarter(t *testing.T) {
	got := BeginningOfQuarter(date(2022, 11, 1))
	if want := date(2022, 10, 1); !got.Equal(want) {
		t.Fatalf("beginning of quarter mismatch: %s != %s", got, want)
	}
}

func TestBeginningOfQuarterMonths(t *testing.T) {
	for m := time.January; m <= time.December; m++ {
		got := BeginningOfQuarter(date(2022, m, 20))
		switch got.Month() {
		case time.January, time.April, time.July, time.October:
		default:
			t.Fatalf("quarter start for month %d: %s", m, got)
		}
		if got.After(date(2022, m, 20)) {
			t.Fatalf("quarter start after input for month %d: %s", m, got)
		}
	}
}

func TestEndOfQuarterPlusMicrosecond(t *testing.T) {
	for m := time.January; m <= time.December; m++ {
		d := date(2022, m, 10)
		if got, want := EndOfQuarter(d).Add(time.Microsecond), BeginningOfNextQuarter(d); !got.Equal(want) {
			t.Fatalf("month %d: %s != %s", m, got, want)
		}
	}
}

func TestBeginningOfNextQuarterFourthQuarter(t *testing.T) {
	for _, m := range []time.Month{time.October, time.November, time.December} {
		got := BeginningOfNextQuarter(date(2022, m, 5))
		if want := date(2023, 1, 1); !got.Equal(want) {
			t.Fatalf("month %d: %s != %s", m, got, want)
		}
	}
}

func TestPreservesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	got := BeginningOfMonth(time.Date(2022, 5, 15, 1, 0, 0, 0, loc))
	if got.Location() != loc {
		t.Fatalf("location not preserved: %s", got.Location())
	}
}

func TestThisTimeLastMonth(t *testing.T) {
	in := time.Date(2022, 5, 15, 8, 30, 12, 42000, time.UTC)
	got, err := ThisTimeLastMonth(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := time.Date(2022, 4, 15, 8, 30, 12, 42000, time.UTC); !got.Equal(want) {
		t.Fatalf("this time last month mismatch: %s != %s", got, want)
	}
}

func TestThisTimeLastMonthJanuary(t *testing.T) {
	got, err := ThisTimeLastMonth(date(2023, 1, 31))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := date(2022, 12, 31); !got.Equal(want) {
		t.Fatalf("january rollback mismatch: %s != %s", got, want)
	}
}

// The day is not clamped: days missing from the previous month fail.
func TestThisTimeLastMonthDayOutOfRange(t *testing.T) {
	for _, d := range []time.Time{date(2022, 3, 31), date(2022, 3, 29), date(2022, 5, 31), date(2022, 12, 31)} {
		_, err := ThisTimeLastMonth(d)
		if !errors.Is(err, ErrDayOutOfRange) {
			t.Fatalf("expected ErrDayOutOfRange for %s, got %v", d, err)
		}
	}
	if _, err := ThisTimeLastMonth(date(2024, 3, 29)); err != nil {
		t.Fatalf("leap year Feb 29 exists: %v", err)
	}
}
