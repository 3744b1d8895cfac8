package reporting

import (
	"errors"
	"time"
)

const dateLayout = "2006-01-02"

// Range is an inclusive time window. Every time-bucketed report computes its
// Range once per request and passes it down, so a request straddling a
// day/week/month boundary stays internally consistent.
type Range struct {
	Start time.Time
	End   time.Time
}

func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// WeekOf returns the calendar week (Monday through Sunday) containing t.
func WeekOf(t time.Time) Range {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday
	}
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).AddDate(0, 0, -(weekday - 1))
	return Range{Start: start, End: start.AddDate(0, 0, 7).Add(-time.Nanosecond)}
}

// MonthOf returns the calendar month containing t.
func MonthOf(t time.Time) Range {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return Range{Start: start, End: start.AddDate(0, 1, 0).Add(-time.Nanosecond)}
}

// YearOf returns the calendar year containing t.
func YearOf(t time.Time) Range {
	start := time.Date(t.Year(), 1, 1, 0, 0, 0, 0, t.Location())
	return Range{Start: start, End: start.AddDate(1, 0, 0).Add(-time.Nanosecond)}
}

// ParseRange builds an inclusive range from start_date/end_date query params
// in YYYY-MM-DD form. The end date is extended to the last instant of that
// day so records dated exactly on end_date are included.
func ParseRange(startDate, endDate string) (Range, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return Range{}, errors.New("start_date must be in YYYY-MM-DD format")
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return Range{}, errors.New("end_date must be in YYYY-MM-DD format")
	}
	if end.Before(start) {
		return Range{}, errors.New("end_date must not be before start_date")
	}
	return Range{Start: start, End: end.AddDate(0, 0, 1).Add(-time.Nanosecond)}, nil
}

// BucketFor resolves the this-week/this-month/this-year path segment used by
// the time-bucketed report variants.
func BucketFor(bucket string, now time.Time) (Range, error) {
	switch bucket {
	case "this-week":
		return WeekOf(now), nil
	case "this-month":
		return MonthOf(now), nil
	case "this-year":
		return YearOf(now), nil
	}
	return Range{}, errors.New("period must be one of this-week, this-month, this-year")
}
