package service

import (
	"fmt"
	"regexp"
	"time"
)

var monthKeyPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// monthWindow parses a strict "YYYY-MM" month key and returns the
// half-open UTC window [start of month, start of next month). The end
// bound is meant for exclusive (<) comparison, so the last instant of
// the month is inside the window and the first instant of the next
// month is not.
func monthWindow(month string) (time.Time, time.Time, error) {
	if !monthKeyPattern.MatchString(month) {
		return time.Time{}, time.Time{}, validationErrorf("invalid month format %q (expected YYYY-MM)", month)
	}

	parsed, err := time.ParseInLocation("2006-01", month, time.UTC)
	if err != nil {
		// Pattern matched but the month number is out of range,
		// e.g. "2025-13" or "2025-00".
		return time.Time{}, time.Time{}, validationErrorf("invalid month %q (expected YYYY-MM)", month)
	}

	start := time.Date(parsed.Year(), parsed.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	return start, end, nil
}

// validateMonthKey checks the key without needing the window.
func validateMonthKey(month string) error {
	_, _, err := monthWindow(month)
	return err
}

// monthKey builds the canonical zero-padded "YYYY-MM" bucket name.
func monthKey(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}
