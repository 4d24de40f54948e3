package config

import (
	"strconv"
	"strings"
	"time"
)

// ParseTimestamp parses unix seconds, RFC3339 or a YYYY-MM-DD date in loc.
// Empty input yields the zero time and ok=false.
func ParseTimestamp(input string, loc *time.Location) (time.Time, bool, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, false, nil
	}
	if loc == nil {
		loc = time.UTC
	}

	if isNumeric(input) {
		val, err := strconv.ParseInt(input, 10, 64)
		if err != nil {
			return time.Time{}, false, err
		}
		return time.Unix(val, 0).In(loc), true, nil
	}

	if tm, err := time.ParseInLocation("2006-01-02", input, loc); err == nil {
		return tm, true, nil
	}

	tm, err := time.Parse(time.RFC3339, input)
	if err != nil {
		return time.Time{}, false, err
	}
	return tm.In(loc), true, nil
}

func isNumeric(input string) bool {
	for _, r := range input {
		if r < '0' || r > '9' {
			return false
		}
	}
	return input != ""
}
