package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	input := time.Date(2024, 1, 15, 18, 45, 30, 999, time.FixedZone("BRT", -3*60*60))

	result := Truncate(input)

	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), result)
}

func TestParseDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		result, err := ParseDate("2024-02-29")

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), *result)
	})

	t.Run("empty string yields the zero time", func(t *testing.T) {
		result, err := ParseDate("")

		require.NoError(t, err)
		assert.True(t, result.IsZero())
	})

	t.Run("malformed date", func(t *testing.T) {
		_, err := ParseDate("15/01/2024")

		assert.Error(t, err)
	})
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected int
	}{
		{
			name:     "single day",
			start:    time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			end:      time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			expected: 1,
		},
		{
			name:     "one week",
			start:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			end:      time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
			expected: 7,
		},
		{
			name:     "time of day is ignored",
			start:    time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC),
			end:      time.Date(2024, 1, 2, 1, 0, 0, 0, time.UTC),
			expected: 2,
		},
		{
			name:     "across a leap february",
			start:    time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			end:      time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
			expected: 29,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DaysBetween(tt.start, tt.end))
		})
	}
}

func TestGenerateRunID(t *testing.T) {
	id, err := GenerateRunID()

	require.NoError(t, err)
	assert.Len(t, id, 6)

	other, err := GenerateRunID()
	require.NoError(t, err)
	assert.NotEqual(t, id, other)
}
