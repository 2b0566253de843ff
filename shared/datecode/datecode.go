// Package datecode handles the stored representations of calendar dates and
// clock times: dates are 8-digit strings ("20240401") and times are 4-digit
// strings ("1400"). The stored form never changes; separators are added only
// for display.
package datecode

import (
	"strconv"
	"time"

	"lodge/shared/timezone"
)

const (
	ymdLayout  = "20060102"
	hhmmLayout = "1504"

	ymdDisplayLayout  = "2006-01-02"
	hhmmDisplayLayout = "15:04"
)

// ValidYMD reports whether value is a well-formed 8-digit calendar date.
func ValidYMD(value string) bool {
	if len(value) != len(ymdLayout) {
		return false
	}

	_, err := time.Parse(ymdLayout, value)

	return err == nil
}

// ValidHHMM reports whether value is a well-formed 4-digit clock time.
func ValidHHMM(value string) bool {
	if len(value) != len(hhmmLayout) {
		return false
	}

	_, err := time.Parse(hhmmLayout, value)

	return err == nil
}

// FormatYMD renders a stored date for display ("20240401" -> "2024-04-01").
// Malformed input is returned unchanged.
func FormatYMD(value string) string {
	t, err := time.Parse(ymdLayout, value)
	if err != nil {
		return value
	}

	return t.Format(ymdDisplayLayout)
}

// ParseYMD recovers the stored form from a display date
// ("2024-04-01" -> "20240401").
func ParseYMD(display string) (string, error) {
	t, err := time.Parse(ymdDisplayLayout, display)
	if err != nil {
		return "", err
	}

	return t.Format(ymdLayout), nil
}

// FormatHHMM renders a stored time for display ("1400" -> "14:00").
// Malformed input is returned unchanged.
func FormatHHMM(value string) string {
	t, err := time.Parse(hhmmLayout, value)
	if err != nil {
		return value
	}

	return t.Format(hhmmDisplayLayout)
}

// ParseHHMM recovers the stored form from a display time
// ("14:00" -> "1400").
func ParseHHMM(display string) (string, error) {
	t, err := time.Parse(hhmmDisplayLayout, display)
	if err != nil {
		return "", err
	}

	return t.Format(hhmmLayout), nil
}

// TodayYMD returns today's date in the application timezone, stored form.
func TodayYMD() string {
	return timezone.Now().Format(ymdLayout)
}

// NowHHMM returns the current clock time in the application timezone, stored form.
func NowHHMM() string {
	return timezone.Now().Format(hhmmLayout)
}

// MonthPrefix returns the 6-digit year-month prefix of a stored date,
// used for month-scoped prefix queries.
func MonthPrefix(t time.Time) string {
	return t.Format("200601")
}

// SeqNo derives the numeric sequence for a point in time from its
// year-month (June 2024 -> 202406).
func SeqNo(t time.Time) int {
	seq, _ := strconv.Atoi(t.Format("200601"))

	return seq
}
