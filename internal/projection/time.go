// Package projection derives the textual and markup fragments synced into
// the site pages. Every function here is a pure function of the business
// profile plus an explicit "today"; nothing reads the clock or the
// filesystem.
package projection

import (
	"fmt"
	"time"
)

const isoDateLayout = "2006-01-02"

// ParseLocalDate parses a "YYYY-MM-DD" date anchored to local midnight.
//
// Every date comparison in this package goes through the local zone; mixing
// UTC and local dates shifts dates near midnight and is the classic
// regression here.
func ParseLocalDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(isoDateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// Today truncates a wall-clock time to its local calendar date.
func Today(now time.Time) time.Time {
	year, month, day := now.Local().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

// FormatTime12Hour converts a "HH:MM" 24-hour time to "h:mm am|pm".
// An empty input stays empty (rendered as "Closed" by callers).
func FormatTime12Hour(clock string) string {
	if clock == "" {
		return ""
	}

	var hour, minute int
	if _, err := fmt.Sscanf(clock, "%02d:%02d", &hour, &minute); err != nil {
		return clock
	}

	suffix := "am"
	if hour >= 12 {
		suffix = "pm"
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour12, minute, suffix)
}

// FormatDate renders an ISO date as "Month D, YYYY".
func FormatDate(isoDate string) (string, error) {
	t, err := ParseLocalDate(isoDate)
	if err != nil {
		return "", err
	}
	return t.Format("January 2, 2006"), nil
}

// FormatDateWithDay renders an ISO date as "Weekday, Month D, YYYY".
func FormatDateWithDay(isoDate string) (string, error) {
	t, err := ParseLocalDate(isoDate)
	if err != nil {
		return "", err
	}
	return t.Format("Monday, January 2, 2006"), nil
}

// NextDay returns the ISO date one calendar day after isoDate, rolling over
// month and year boundaries.
func NextDay(isoDate string) (string, error) {
	t, err := ParseLocalDate(isoDate)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, 1).Format(isoDateLayout), nil
}
