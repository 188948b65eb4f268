package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summary holds the aggregate totals over a set of transactions.
// TotalExpense is kept as a positive magnitude.
type Summary struct {
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Balance      decimal.Decimal `json:"balance"`
}

// Summarize computes totals over the given transactions.
func Summarize(txs []Transaction) Summary {
	income := decimal.Zero
	expense := decimal.Zero
	for _, t := range txs {
		if t.Amount.IsPositive() {
			income = income.Add(t.Amount)
		} else {
			expense = expense.Add(t.Amount.Abs())
		}
	}
	return Summary{
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income.Sub(expense),
	}
}

// SummaryFor computes the totals shown alongside a filtered view.
// Time-window filters narrow the totals to the window; every other kind
// summarizes the entire collection, regardless of which type filter the
// view currently displays. The asymmetry is intentional and preserved
// from the original behavior.
func SummaryFor(txs []Transaction, kind FilterKind, ref time.Time) Summary {
	if kind.IsTimeWindow() {
		return Summarize(Filter(txs, kind, ref))
	}
	return Summarize(txs)
}
