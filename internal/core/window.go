package core

import "time"

// Window is a half-open interval [Start, End) of local calendar time.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether a calendar date falls inside the window.
// The transaction's clock time is ignored: the date is placed at midnight
// in the window's location before comparing.
func (w Window) Contains(d Date) bool {
	t := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, w.Start.Location())
	return !t.Before(w.Start) && t.Before(w.End)
}

// DayWindow covers the calendar day of ref.
func DayWindow(ref time.Time) Window {
	start := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	return Window{Start: start, End: start.AddDate(0, 0, 1)}
}

// WeekWindow covers the Monday-started week of ref. For a Sunday the week
// began six days earlier, not the same day.
func WeekWindow(ref time.Time) Window {
	dow := int(ref.Weekday()) // 0=Sunday .. 6=Saturday
	offsetToMonday := 1 - dow
	if dow == 0 {
		offsetToMonday = -6
	}
	start := time.Date(ref.Year(), ref.Month(), ref.Day()+offsetToMonday, 0, 0, 0, 0, ref.Location())
	return Window{Start: start, End: start.AddDate(0, 0, 7)}
}

// MonthWindow covers the calendar month of ref.
func MonthWindow(ref time.Time) Window {
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	return Window{Start: start, End: start.AddDate(0, 1, 0)}
}

// YearWindow covers the calendar year of ref.
func YearWindow(ref time.Time) Window {
	start := time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, ref.Location())
	return Window{Start: start, End: start.AddDate(1, 0, 0)}
}
