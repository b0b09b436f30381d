package util

import (
	"fmt"
	"time"
)

// DateFormat is the canonical day-granularity date format (ISO-8601).
const DateFormat = "2006-01-02"

// readDateFormat is permissive on read, accepting single-digit month/day.
const readDateFormat = "2006-1-2"

// MonthFormat is the canonical year-month format.
const MonthFormat = "2006-01"

// CurrentDate returns today as YYYY-MM-DD.
func CurrentDate() string { return time.Now().Format(DateFormat) }

// CurrentMonth returns the current month as YYYY-MM.
func CurrentMonth() string { return time.Now().Format(MonthFormat) }

// Timestamp returns the current instant as an RFC3339 string.
func Timestamp() string { return time.Now().Format(time.RFC3339) }

// NormalizeDate parses a date string (permissive, e.g. "2025-7-1") and
// returns it in the canonical YYYY-MM-DD form.
func NormalizeDate(s string) (string, error) {
	t, err := time.Parse(readDateFormat, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q want format %q: %w", s, DateFormat, err)
	}
	return t.Format(DateFormat), nil
}

// DaysInMonth returns the number of calendar days in the given month,
// handling variable month lengths and leap years.
func DaysInMonth(year, month int) int {
	// day zero of the next month is the last day of this month
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthRange returns the first and last calendar day of the given month
// as YYYY-MM-DD strings.
func MonthRange(year, month int) (start, end string) {
	start = fmt.Sprintf("%04d-%02d-01", year, month)
	end = fmt.Sprintf("%04d-%02d-%02d", year, month, DaysInMonth(year, month))
	return start, end
}

// ParseMonth parses a YYYY-MM string into year and month numbers.
func ParseMonth(s string) (year, month int, err error) {
	t, err := time.Parse(MonthFormat, s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q want format %q: %w", s, MonthFormat, err)
	}
	return t.Year(), int(t.Month()), nil
}
