package period

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/akozyrev/basket-analytics-api/internal/domain"
)

func TestResolve_Keywords(t *testing.T) {
	// Wednesday, so the running week starts two days earlier.
	reference := time.Date(2024, 1, 17, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		keyword  string
		expected domain.DateRange
	}{
		{
			name:    "today resolves to the reference date",
			keyword: "today",
			expected: domain.DateRange{
				Start: time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name:    "yesterday resolves to one day back",
			keyword: "yesterday",
			expected: domain.DateRange{
				Start: time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name:    "week runs from monday to the reference date",
			keyword: "week",
			expected: domain.DateRange{
				Start: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name:    "last_week covers the full previous monday to sunday span",
			keyword: "last_week",
			expected: domain.DateRange{
				Start: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name:    "month runs from the first to the reference date",
			keyword: "month",
			expected: domain.DateRange{
				Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name:    "last_month covers the full previous calendar month",
			keyword: "last_month",
			expected: domain.DateRange{
				Start: time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Resolve(Query{Keyword: tt.keyword, Reference: &reference})

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestResolve_Aliases(t *testing.T) {
	reference := time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		alias     string
		canonical string
	}{
		{alias: "this_week", canonical: "week"},
		{alias: "current_week", canonical: "week"},
		{alias: "previous_week", canonical: "last_week"},
		{alias: "prev_week", canonical: "last_week"},
		{alias: "this_month", canonical: "month"},
		{alias: "current_month", canonical: "month"},
		{alias: "previous_month", canonical: "last_month"},
		{alias: "prev_month", canonical: "last_month"},
	}

	for _, tt := range tests {
		t.Run(tt.alias, func(t *testing.T) {
			fromAlias, err := Resolve(Query{Keyword: tt.alias, Reference: &reference})
			require.NoError(t, err)

			fromCanonical, err := Resolve(Query{Keyword: tt.canonical, Reference: &reference})
			require.NoError(t, err)

			assert.Equal(t, fromCanonical, fromAlias)
		})
	}
}

func TestResolve_Boundaries(t *testing.T) {
	tests := []struct {
		name      string
		reference time.Time
		keyword   string
		expected  domain.DateRange
	}{
		{
			name:      "week on a sunday still starts on the preceding monday",
			reference: time.Date(2024, 1, 21, 0, 0, 0, 0, time.UTC),
			keyword:   "week",
			expected: domain.DateRange{
				Start: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2024, 1, 21, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name:      "week on a monday is a single day",
			reference: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			keyword:   "week",
			expected: domain.DateRange{
				Start: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name:      "yesterday crosses the year boundary",
			reference: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			keyword:   "yesterday",
			expected: domain.DateRange{
				Start: time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name:      "last_month ends on leap february 29",
			reference: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			keyword:   "last_month",
			expected: domain.DateRange{
				Start: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name:      "last_month from january falls into the previous year",
			reference: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			keyword:   "last_month",
			expected: domain.DateRange{
				Start: time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Resolve(Query{Keyword: tt.keyword, Reference: &tt.reference})

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestResolve_ExplicitDates(t *testing.T) {
	reference := time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC)

	t.Run("explicit start and end are returned verbatim", func(t *testing.T) {
		result, err := Resolve(Query{
			StartDate: "2024-02-01",
			EndDate:   "2024-02-10",
			Reference: &reference,
		})

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), result.Start)
		assert.Equal(t, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), result.End)
	})

	t.Run("inverted range is not reordered", func(t *testing.T) {
		result, err := Resolve(Query{
			StartDate: "2024-02-10",
			EndDate:   "2024-02-01",
			Reference: &reference,
		})

		require.NoError(t, err)
		assert.True(t, result.Start.After(result.End))
	})

	t.Run("keyword wins over explicit dates", func(t *testing.T) {
		result, err := Resolve(Query{
			Keyword:   "yesterday",
			StartDate: "2024-02-01",
			EndDate:   "2024-02-10",
			Reference: &reference,
		})

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC), result.Start)
		assert.Equal(t, time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC), result.End)
	})

	t.Run("missing end date falls back to the default range", func(t *testing.T) {
		result, err := Resolve(Query{StartDate: "2024-02-01", Reference: &reference})

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC), result.Start)
		assert.Equal(t, time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC), result.End)
	})

	t.Run("malformed start date reports a parse error", func(t *testing.T) {
		_, err := Resolve(Query{
			StartDate: "01/02/2024",
			EndDate:   "2024-02-10",
			Reference: &reference,
		})

		require.Error(t, err)

		var parseErr *ParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, "start", parseErr.Field)
		assert.Equal(t, "01/02/2024", parseErr.Value)
	})

	t.Run("malformed end date reports a parse error", func(t *testing.T) {
		_, err := Resolve(Query{
			StartDate: "2024-02-01",
			EndDate:   "not-a-date",
			Reference: &reference,
		})

		require.Error(t, err)

		var parseErr *ParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, "end", parseErr.Field)
	})
}

func TestResolve_Defaults(t *testing.T) {
	reference := time.Date(2024, 1, 17, 9, 0, 0, 0, time.UTC)

	t.Run("empty query defaults to today", func(t *testing.T) {
		result, err := Resolve(Query{Reference: &reference})

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC), result.Start)
		assert.Equal(t, result.Start, result.End)
	})

	t.Run("unknown keyword falls back to today", func(t *testing.T) {
		result, err := Resolve(Query{Keyword: "fortnight", Reference: &reference})

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC), result.Start)
		assert.Equal(t, result.Start, result.End)
	})
}
