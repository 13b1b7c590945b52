package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateRange_Days(t *testing.T) {
	tests := []struct {
		name     string
		r        DateRange
		expected int
	}{
		{name: "single day", r: DateRange{Start: day(2024, 1, 15), End: day(2024, 1, 15)}, expected: 1},
		{name: "one week", r: DateRange{Start: day(2024, 1, 1), End: day(2024, 1, 7)}, expected: 7},
		{name: "full month", r: DateRange{Start: day(2024, 1, 1), End: day(2024, 1, 31)}, expected: 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.r.Days())
		})
	}
}

func TestDateRange_Previous(t *testing.T) {
	tests := []struct {
		name     string
		r        DateRange
		expected DateRange
	}{
		{
			name:     "one week steps back one week",
			r:        DateRange{Start: day(2024, 1, 8), End: day(2024, 1, 14)},
			expected: DateRange{Start: day(2024, 1, 1), End: day(2024, 1, 7)},
		},
		{
			name:     "single day steps back one day",
			r:        DateRange{Start: day(2024, 1, 15), End: day(2024, 1, 15)},
			expected: DateRange{Start: day(2024, 1, 14), End: day(2024, 1, 14)},
		},
		{
			name:     "crosses the month boundary",
			r:        DateRange{Start: day(2024, 3, 1), End: day(2024, 3, 10)},
			expected: DateRange{Start: day(2024, 2, 20), End: day(2024, 2, 29)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := tt.r.Previous()

			assert.Equal(t, tt.expected, prev)
			assert.Equal(t, tt.r.Days(), prev.Days())
			assert.Equal(t, tt.r.Start.AddDate(0, 0, -1), prev.End)
		})
	}
}
