package service

import (
	"fmt"
	"testing"
	"time"
)

func TestMonthWindow(t *testing.T) {
	tests := []struct {
		month     string
		wantStart time.Time
		wantEnd   time.Time
	}{
		{"2025-10", time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)},
		{"2025-12", time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"2024-02", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.month, func(t *testing.T) {
			start, end, err := monthWindow(tt.month)
			if err != nil {
				t.Fatalf("monthWindow(%q) returned error: %v", tt.month, err)
			}
			if !start.Equal(tt.wantStart) {
				t.Errorf("start = %v, want %v", start, tt.wantStart)
			}
			if !end.Equal(tt.wantEnd) {
				t.Errorf("end = %v, want %v", end, tt.wantEnd)
			}
		})
	}
}

func TestMonthWindowBoundaries(t *testing.T) {
	start, end, err := monthWindow("2025-02")
	if err != nil {
		t.Fatal(err)
	}

	lastInstant := time.Date(2025, 2, 28, 23, 59, 59, 0, time.UTC)
	if lastInstant.Before(start) || !lastInstant.Before(end) {
		t.Errorf("2025-02-28T23:59:59 must be inside [%v, %v)", start, end)
	}

	nextMonth := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	if nextMonth.Before(end) {
		t.Errorf("2025-03-01T00:00:00 must be outside the window ending %v", end)
	}
}

// Every timestamp of a month must fall inside its window.
func TestMonthWindowCoversWholeMonth(t *testing.T) {
	for year := 2020; year <= 2026; year++ {
		for month := 1; month <= 12; month++ {
			key := fmt.Sprintf("%04d-%02d", year, month)
			start, end, err := monthWindow(key)
			if err != nil {
				t.Fatalf("monthWindow(%q): %v", key, err)
			}

			first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
			last := first.AddDate(0, 1, 0).Add(-time.Nanosecond)

			if first.Before(start) {
				t.Errorf("%s: first instant %v before start %v", key, first, start)
			}
			if !last.Before(end) {
				t.Errorf("%s: last instant %v not before end %v", key, last, end)
			}
		}
	}
}

func TestMonthWindowRejectsMalformed(t *testing.T) {
	invalid := []string{
		"2025-13",
		"2025-00",
		"25-10",
		"2025-1",
		"2025/10",
		"abcd-ef",
		"",
		"2025-10-01",
	}

	for _, month := range invalid {
		if _, _, err := monthWindow(month); err == nil {
			t.Errorf("monthWindow(%q) should fail", month)
		} else if !IsValidationError(err) {
			t.Errorf("monthWindow(%q) error should be a validation error, got %v", month, err)
		}
	}
}

func TestMonthKeyZeroPadding(t *testing.T) {
	tests := []struct {
		year, month int
		want        string
	}{
		{2025, 3, "2025-03"},
		{2025, 10, "2025-10"},
		{999, 1, "0999-01"},
	}

	for _, tt := range tests {
		if got := monthKey(tt.year, tt.month); got != tt.want {
			t.Errorf("monthKey(%d, %d) = %q, want %q", tt.year, tt.month, got, tt.want)
		}
	}
}
