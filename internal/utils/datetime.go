package utils

import (
	"fmt"
	"strings"
	"time"
)

// NormalizeDate converts a "DD/MM/YYYY" date to "YYYY-MM-DD". Dates already
// in ISO form pass through untouched.
func NormalizeDate(date string) string {
	if !strings.Contains(date, "/") {
		return date
	}
	parts := strings.Split(date, "/")
	if len(parts) != 3 {
		return date
	}
	day, month, year := parts[0], parts[1], parts[2]
	if len(day) == 1 {
		day = "0" + day
	}
	if len(month) == 1 {
		month = "0" + month
	}
	return fmt.Sprintf("%s-%s-%s", year, month, day)
}

// SlotStart strips a "HH:MM - HH:MM" range down to its start component.
func SlotStart(slot string) string {
	if idx := strings.Index(slot, " - "); idx >= 0 {
		return slot[:idx]
	}
	return slot
}

// DateKey formats a time as the "YYYY-MM-DD" key used throughout the agenda.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseEventTime parses an event timestamp from the upstream API, which ships
// either RFC3339 or a naive local "2006-01-02T15:04:05".
func ParseEventTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized event time %q", s)
}

// CombineDateSlot builds the local start time of a slot on a date.
func CombineDateSlot(date time.Time, slot string) (time.Time, error) {
	hm, err := time.Parse("15:04", slot)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid slot time %q: %w", slot, err)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hm.Hour(), hm.Minute(), 0, 0, time.Local), nil
}
