package core

import (
	"testing"
	"time"
)

func TestDayWindow(t *testing.T) {
	ref := time.Date(2024, 3, 10, 15, 42, 7, 0, time.UTC)
	w := DayWindow(ref)

	if !w.Start.Equal(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start %v", w.Start)
	}
	if !w.End.Equal(time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected end %v", w.End)
	}
}

func TestWeekWindow(t *testing.T) {
	tests := []struct {
		name      string
		ref       time.Time
		wantStart time.Time
	}{
		{
			name:      "wednesday belongs to the week of its monday",
			ref:       time.Date(2024, 3, 13, 12, 0, 0, 0, time.UTC), // Wednesday
			wantStart: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "monday starts its own week",
			ref:       time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
			wantStart: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "sunday belongs to the week of the previous monday",
			ref:       time.Date(2024, 3, 17, 23, 0, 0, 0, time.UTC), // Sunday
			wantStart: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),  // 6 days earlier
		},
		{
			name:      "week spanning a month boundary",
			ref:       time.Date(2024, 4, 2, 8, 0, 0, 0, time.UTC), // Tuesday
			wantStart: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := WeekWindow(tt.ref)
			if !w.Start.Equal(tt.wantStart) {
				t.Errorf("WeekWindow(%v).Start = %v, want %v", tt.ref, w.Start, tt.wantStart)
			}
			if !w.End.Equal(tt.wantStart.AddDate(0, 0, 7)) {
				t.Errorf("WeekWindow(%v).End = %v, want %v", tt.ref, w.End, tt.wantStart.AddDate(0, 0, 7))
			}
		})
	}
}

func TestMonthWindow(t *testing.T) {
	ref := time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC)
	w := MonthWindow(ref)

	if !w.Start.Equal(time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start %v", w.Start)
	}
	// Next month rolls into the next year.
	if !w.End.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected end %v", w.End)
	}
}

func TestYearWindow(t *testing.T) {
	ref := time.Date(2024, 7, 4, 12, 0, 0, 0, time.UTC)
	w := YearWindow(ref)

	if !w.Start.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start %v", w.Start)
	}
	if !w.End.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected end %v", w.End)
	}
}

func TestWindowBoundaries(t *testing.T) {
	// Half-open interval: the start day is in, the end day is out.
	w := MonthWindow(time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))

	cases := []struct {
		d    Date
		want bool
	}{
		{NewDate(2024, 3, 1), true},   // exactly at start
		{NewDate(2024, 3, 31), true},  // last day inside
		{NewDate(2024, 4, 1), false},  // exactly at end
		{NewDate(2024, 2, 29), false}, // before start
	}
	for i, tc := range cases {
		if got := w.Contains(tc.d); got != tc.want {
			t.Errorf("case %d: Contains(%v) = %v, want %v", i, tc.d, got, tc.want)
		}
	}
}
