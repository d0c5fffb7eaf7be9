// Package dates derives the offer-letter window shown on the confirmation
// page from the program start date published by the upstream backend.
package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// InvalidFormatMarker is returned in place of the first window date when the
// input cannot be parsed. The second date is then empty.
const InvalidFormatMarker = "Error: Please provide date in DD/MM/YYYY format"

// DefaultOfferOffsetDays is the gap between start date and the first
// offer-letter date, and again between the first and second.
const DefaultOfferOffsetDays = 5

// DeriveWindow parses startDate as DD/MM/YYYY and returns the two offer
// window dates, startDate+offsetDays and startDate+2*offsetDays, formatted
// as "January 6, 2024". Malformed input or an impossible calendar date
// yields (InvalidFormatMarker, ""); the function never panics.
func DeriveWindow(startDate string, offsetDays int) (string, string) {
	t, ok := parseDDMMYYYY(startDate)
	if !ok {
		return InvalidFormatMarker, ""
	}

	first := t.AddDate(0, 0, offsetDays)
	second := first.AddDate(0, 0, offsetDays)

	return formatLong(first), formatLong(second)
}

// parseDDMMYYYY splits the input into exactly three numeric parts and
// rejects dates that do not exist on the Gregorian calendar (month 13,
// day 32, 30 February and the like).
func parseDDMMYYYY(s string) (time.Time, bool) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, false
	}

	if month < 1 || month > 12 || day < 1 || year < 1 {
		return time.Time{}, false
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (32 January becomes 1 February); an
	// input that does not round-trip was not a real calendar date.
	if t.Day() != day || t.Month() != time.Month(month) || t.Year() != year {
		return time.Time{}, false
	}
	return t, true
}

// formatLong renders "<Month name> <day>, <year>" with no zero-padding.
func formatLong(t time.Time) string {
	return fmt.Sprintf("%s %d, %d", t.Month().String(), t.Day(), t.Year())
}
