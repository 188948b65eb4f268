package core

import (
	"fmt"
	"time"
)

const (
	FilterAll     FilterKind = "all"
	FilterIncome  FilterKind = "income"
	FilterExpense FilterKind = "expense"
	FilterDaily   FilterKind = "daily"
	FilterWeekly  FilterKind = "weekly"
	FilterMonthly FilterKind = "monthly"
	FilterYearly  FilterKind = "yearly"
)

// FilterKind selects one view of the collection. Type filters and
// time-window filters are mutually exclusive modes, never composed.
type FilterKind string

// ParseFilterKind maps a selector string to a FilterKind.
func ParseFilterKind(s string) (FilterKind, error) {
	switch k := FilterKind(s); k {
	case FilterAll, FilterIncome, FilterExpense,
		FilterDaily, FilterWeekly, FilterMonthly, FilterYearly:
		return k, nil
	default:
		return FilterAll, fmt.Errorf("unknown filter %q", s)
	}
}

// IsTimeWindow reports whether the kind selects by calendar window
// rather than by transaction type.
func (k FilterKind) IsTimeWindow() bool {
	switch k {
	case FilterDaily, FilterWeekly, FilterMonthly, FilterYearly:
		return true
	default:
		return false
	}
}

// WindowAt returns the calendar window the kind selects, anchored at ref.
// Only meaningful for time-window kinds.
func (k FilterKind) WindowAt(ref time.Time) Window {
	switch k {
	case FilterDaily:
		return DayWindow(ref)
	case FilterWeekly:
		return WeekWindow(ref)
	case FilterMonthly:
		return MonthWindow(ref)
	case FilterYearly:
		return YearWindow(ref)
	default:
		return Window{}
	}
}

// Filter returns the subset of txs matching kind, with ref anchoring the
// time-window kinds. An unrecognized kind behaves as FilterAll.
func Filter(txs []Transaction, kind FilterKind, ref time.Time) []Transaction {
	switch kind {
	case FilterIncome:
		return filterBy(txs, func(t Transaction) bool { return t.Amount.IsPositive() })
	case FilterExpense:
		return filterBy(txs, func(t Transaction) bool { return t.Amount.IsNegative() })
	case FilterDaily, FilterWeekly, FilterMonthly, FilterYearly:
		w := kind.WindowAt(ref)
		return filterBy(txs, func(t Transaction) bool { return w.Contains(t.Date) })
	default:
		out := make([]Transaction, len(txs))
		copy(out, txs)
		return out
	}
}

func filterBy(txs []Transaction, keep func(Transaction) bool) []Transaction {
	out := make([]Transaction, 0, len(txs))
	for _, t := range txs {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
