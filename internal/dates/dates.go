// Package dates normalizes the textual dates found on ledger records.
//
// Records carry dates as entered: year-first ("2024-03-15", "2024/3/5") and
// day-first ("15-03-2024", "15/03/2024") encodings coexist, as do full
// timestamps. Parsing is lenient; anything unrecognized is left untouched.
package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Format is the canonical date encoding.
const Format = "2006-01-02"

// MonthFormat is the encoding of month keys.
const MonthFormat = "2006-01"

// Undated is the month bucket for dates no month can be recovered from.
const Undated = "undated"

// layouts are tried in order. Single-digit months and days are accepted.
var layouts = []string{
	"2006-1-2",
	"2-1-2006",
	"2006/1/2",
	"2/1/2006",
	"2.1.2006",
	time.RFC3339,
	"2006-01-02T15:04:05.000Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

var (
	yearMonthRE = regexp.MustCompile(`(\d{4})[-/.](\d{1,2})`)
	monthYearRE = regexp.MustCompile(`(?:^|\D)(\d{1,2})[-/.](\d{4})`)
)

// Parse reads s in any of the accepted encodings and returns the day at
// midnight UTC.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range layouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q want format %q", s, Format)
}

// Normalize rewrites s in the canonical encoding. Unparseable input is
// returned unmodified.
func Normalize(s string) string {
	t, err := Parse(s)
	if err != nil {
		return s
	}
	return t.Format(Format)
}

// MonthKey returns the "YYYY-MM" bucket of s. When s does not parse as a
// whole, a year-month or month-year fragment is used if one is present,
// otherwise Undated.
func MonthKey(s string) string {
	if t, err := Parse(s); err == nil {
		return t.Format(MonthFormat)
	}
	if m := yearMonthRE.FindStringSubmatch(s); m != nil {
		if key, ok := monthKey(m[1], m[2]); ok {
			return key
		}
	}
	if m := monthYearRE.FindStringSubmatch(s); m != nil {
		if key, ok := monthKey(m[2], m[1]); ok {
			return key
		}
	}
	return Undated
}

func monthKey(year, month string) (string, bool) {
	y, err := strconv.Atoi(year)
	if err != nil {
		return "", false
	}
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d", y, m), true
}

// Compare orders two textual dates chronologically. Unparseable dates sort
// after parseable ones and compare as strings among themselves.
func Compare(a, b string) int {
	ta, errA := Parse(a)
	tb, errB := Parse(b)
	switch {
	case errA == nil && errB == nil:
		return ta.Compare(tb)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// CompareMonthKeys orders month keys newest first, with Undated and any
// other non-month key last.
func CompareMonthKeys(a, b string) int {
	_, errA := time.Parse(MonthFormat, a)
	_, errB := time.Parse(MonthFormat, b)
	switch {
	case errA == nil && errB == nil:
		return strings.Compare(b, a)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	default:
		return strings.Compare(a, b)
	}
}
