package series

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dayFirst matches DD-MM-YY and DD-MM-YYYY with '-', '/' or '.' separators,
// optionally followed by a time of day.
var dayFirst = regexp.MustCompile(`^(\d{1,2})[-/.](\d{1,2})[-/.](\d{2}|\d{4})(?:[ T].*)?$`)

// fallbackLayouts are tried in order when the day-first form does not match.
var fallbackLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
	"2006.01.02",
	"Jan 2, 2006",
	"2 Jan 2006",
	"January 2, 2006",
}

// ParseDate reads a purchase date. Day-first numeric forms are tried first,
// two-digit years meaning 20YY; then ISO and a few textual layouts. It
// returns false when nothing matches.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if m := dayFirst.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if len(m[3]) == 2 {
			year += 2000
		}
		if month < 1 || month > 12 || day < 1 || day > 31 {
			return time.Time{}, false
		}
		t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		if t.Day() != day {
			// 31-02-2024 and friends would silently roll into the next month.
			return time.Time{}, false
		}
		return t, true
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DateKey returns the calendar day of s as YYYY-MM-DD, so that every layout
// ParseDate accepts maps one day onto one key. Unparseable dates are their
// own key, trimmed.
func DateKey(s string) string {
	s = strings.TrimSpace(s)
	if t, ok := ParseDate(s); ok {
		return t.Format("2006-01-02")
	}
	return s
}
