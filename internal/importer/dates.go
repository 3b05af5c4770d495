package importer

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Spreadsheet serial dates count days from this epoch (the 1900 date
// system, including its leap-year quirk).
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

var (
	digitsOnly   = regexp.MustCompile(`^\d+$`)
	datePartsSep = regexp.MustCompile(`[/\-.]`)
)

var textualLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
}

// ParseDate turns whatever a spreadsheet cell holds into a date.
// It accepts textual dates, spreadsheet serial numbers, unix-millisecond
// timestamps, and the common US and ISO separator formats. Two-digit
// years are pivoted at 50. Returns nil when nothing parses.
func ParseDate(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	if digitsOnly.MatchString(value) {
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil
		}
		// 13-digit values are unix milliseconds; anything shorter in a
		// plausible range is a workbook serial.
		if n > 1_000_000_000_000 {
			t := time.UnixMilli(n).UTC()
			if t.Year() >= 1950 && t.Year() <= 2100 {
				return &t
			}
			return nil
		}
		if n >= 1 && n <= 200_000 {
			t := serialEpoch.AddDate(0, 0, int(n))
			return &t
		}
		return nil
	}

	if t := parseSeparated(value); t != nil {
		return t
	}

	for _, layout := range textualLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

// parseSeparated handles a/b/c dates with slash, dash or dot separators.
// Month-first is assumed unless the first component cannot be a month,
// and a leading 4-digit component means ISO year-first.
func parseSeparated(value string) *time.Time {
	parts := datePartsSep.Split(value, -1)
	if len(parts) != 3 {
		return nil
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil
		}
		nums[i] = n
	}

	var year, month, day int
	switch {
	case len(parts[0]) == 4:
		year, month, day = nums[0], nums[1], nums[2]
	case nums[0] > 12 && nums[1] <= 12:
		day, month, year = nums[0], nums[1], nums[2]
	default:
		month, day, year = nums[0], nums[1], nums[2]
	}

	if year < 100 {
		if year < 50 {
			year += 2000
		} else {
			year += 1900
		}
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return nil
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month {
		return nil
	}
	return &t
}

// ParseDateOr returns the parsed date or the given fallback.
func ParseDateOr(value string, fallback time.Time) time.Time {
	if t := ParseDate(value); t != nil {
		return *t
	}
	return fallback
}
