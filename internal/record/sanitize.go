package record

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// emptySentinels are cell values that spreadsheets use to mean "no data".
// Matching is case-insensitive after trimming.
var emptySentinels = map[string]bool{
	"":          true,
	"#n/a":      true,
	"n/a":       true,
	"na":        true,
	"null":      true,
	"undefined": true,
	"-":         true,
	"sin dato":  true,
	"sin área":  true,
	"sin area":  true,
}

// Clean trims a raw cell value and normalizes sentinel "empty" tokens to the
// empty string. Any other value is returned trimmed but otherwise untouched.
func Clean(value string) string {
	trimmed := strings.TrimSpace(value)
	if emptySentinels[strings.ToLower(trimmed)] {
		return ""
	}
	return trimmed
}

// IsSentinel reports whether a value is one of the sentinel "empty" tokens.
func IsSentinel(value string) bool {
	return emptySentinels[strings.ToLower(strings.TrimSpace(value))]
}

// DateBounds is the plausibility window for parsed calendar dates. Dates whose
// year falls outside the window are rejected, which guards against spreadsheet
// corruption producing wildly wrong years.
type DateBounds struct {
	MinYear int
	MaxYear int
}

// DefaultDateBounds covers the years the tracked portfolio can plausibly span.
var DefaultDateBounds = DateBounds{MinYear: 2020, MaxYear: 2030}

func (b DateBounds) contains(t time.Time) bool {
	y := t.Year()
	return y >= b.MinYear && y <= b.MaxYear
}

var dayMonthYearPattern = regexp.MustCompile(`^(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{2,4})$`)

var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate parses a cell value into a calendar date. It accepts ISO-8601
// strings and D/M/YYYY (or D-M-YYYY, D.M.YYYY) with 1-2 digit day and month
// and 2- or 4-digit years; 2-digit years are assumed to be in the 2000s.
// Unparseable or implausible values yield nil, never a default date.
func ParseDate(raw string, bounds DateBounds) *time.Time {
	cleaned := Clean(raw)
	if cleaned == "" {
		return nil
	}

	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			if !bounds.contains(t) {
				return nil
			}
			day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &day
		}
	}

	m := dayMonthYearPattern.FindStringSubmatch(cleaned)
	if m == nil {
		return nil
	}

	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	if len(m[3]) == 2 {
		year += 2000
	}

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return nil
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (32/13 rolls over); reject anything that moved.
	if t.Day() != day || t.Month() != time.Month(month) || t.Year() != year {
		return nil
	}
	if !bounds.contains(t) {
		return nil
	}
	return &t
}
