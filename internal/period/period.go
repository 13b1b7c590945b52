// Package period turns period keywords or explicit date strings into
// concrete inclusive date ranges.
package period

import (
	"fmt"
	"time"

	"github.com/akozyrev/basket-analytics-api/internal/domain"
	"github.com/akozyrev/basket-analytics-api/pkg/utils"
)

// Canonical period keywords.
const (
	KeywordToday     = "today"
	KeywordYesterday = "yesterday"
	KeywordWeek      = "week"
	KeywordLastWeek  = "last_week"
	KeywordMonth     = "month"
	KeywordLastMonth = "last_month"
)

// aliases maps alternate spellings used by upstream callers onto the
// canonical keywords.
var aliases = map[string]string{
	"current_week":   KeywordWeek,
	"this_week":      KeywordWeek,
	"previous_week":  KeywordLastWeek,
	"prev_week":      KeywordLastWeek,
	"current_month":  KeywordMonth,
	"this_month":     KeywordMonth,
	"previous_month": KeywordLastMonth,
	"prev_month":     KeywordLastMonth,
}

// ParseError reports an explicit date string that is not YYYY-MM-DD.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s date %q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Query is one period resolution request. Reference defaults to the
// current date when nil.
type Query struct {
	Keyword   string
	StartDate string
	EndDate   string
	Reference *time.Time
}

// Resolve produces the inclusive date range for a query. Keyword takes
// precedence; explicit start/end strings are used when both are present;
// otherwise the range defaults to {today, today}. Resolve has no side
// effects and is deterministic given a fixed reference date.
func Resolve(q Query) (domain.DateRange, error) {
	ref := time.Now()
	if q.Reference != nil {
		ref = *q.Reference
	}
	today := utils.Truncate(ref)

	keyword := q.Keyword
	if canonical, ok := aliases[keyword]; ok {
		keyword = canonical
	}

	switch keyword {
	case KeywordToday:
		return domain.DateRange{Start: today, End: today}, nil

	case KeywordYesterday:
		yesterday := today.AddDate(0, 0, -1)
		return domain.DateRange{Start: yesterday, End: yesterday}, nil

	case KeywordWeek:
		return domain.DateRange{Start: mondayOf(today), End: today}, nil

	case KeywordLastWeek:
		monday := mondayOf(today).AddDate(0, 0, -7)
		return domain.DateRange{Start: monday, End: monday.AddDate(0, 0, 6)}, nil

	case KeywordMonth:
		first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		return domain.DateRange{Start: first, End: today}, nil

	case KeywordLastMonth:
		firstOfCurrent := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		first := firstOfCurrent.AddDate(0, -1, 0)
		return domain.DateRange{Start: first, End: firstOfCurrent.AddDate(0, 0, -1)}, nil
	}

	if q.StartDate != "" && q.EndDate != "" {
		start, err := time.Parse(time.DateOnly, q.StartDate)
		if err != nil {
			return domain.DateRange{}, &ParseError{Field: "start", Value: q.StartDate, Err: err}
		}

		end, err := time.Parse(time.DateOnly, q.EndDate)
		if err != nil {
			return domain.DateRange{}, &ParseError{Field: "end", Value: q.EndDate, Err: err}
		}

		// Returned verbatim; ordering is the caller's responsibility.
		return domain.DateRange{Start: start, End: end}, nil
	}

	return domain.DateRange{Start: today, End: today}, nil
}

// mondayOf returns the Monday of the week containing the given date.
func mondayOf(day time.Time) time.Time {
	offset := int(day.Weekday()) - 1
	if day.Weekday() == time.Sunday {
		offset = 6
	}
	return day.AddDate(0, 0, -offset)
}
