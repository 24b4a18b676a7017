package domain

import "time"

// RangeSeparator joins the two ends of a described range. It is kept verbatim so
// descriptions match the ones already shown to shoppers.
const RangeSeparator = "至"

// DateRangeDescriber renders a validity window for display.
type DateRangeDescriber interface {
	Describe(start, end *time.Time) string
}

// DateRangeFormatter describes windows at day granularity in a fixed location.
type DateRangeFormatter struct {
	loc *time.Location
}

// NewDateRangeFormatter creates a formatter that interprets instants in loc.
// A nil location means UTC.
func NewDateRangeFormatter(loc *time.Location) *DateRangeFormatter {
	if loc == nil {
		loc = time.UTC
	}
	return &DateRangeFormatter{loc: loc}
}

// Describe returns the shortest unambiguous rendering of [start, end]:
//
//	both nil           ""
//	one side only      2024-03-01
//	same day           2024-03-01
//	same month         2024-03-01至15
//	same year          2024-03-01至06-10
//	otherwise          2023-12-01至2024-01-05
func (f *DateRangeFormatter) Describe(start, end *time.Time) string {
	switch {
	case start == nil && end == nil:
		return ""
	case start == nil:
		return end.In(f.loc).Format(time.DateOnly)
	case end == nil:
		return start.In(f.loc).Format(time.DateOnly)
	}

	s := start.In(f.loc)
	e := end.In(f.loc)
	from := s.Format(time.DateOnly)

	switch {
	case s.Year() == e.Year() && s.YearDay() == e.YearDay():
		return from
	case s.Year() == e.Year() && s.Month() == e.Month():
		return from + RangeSeparator + e.Format("02")
	case s.Year() == e.Year():
		return from + RangeSeparator + e.Format("01-02")
	}

	to := e.Format(time.DateOnly)
	if from == to {
		return from
	}
	return from + RangeSeparator + to
}
