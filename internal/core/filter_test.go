package core

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func tx(id string, amount int64, d Date) Transaction {
	typ := Income
	if amount < 0 {
		typ = Expense
	}
	return Transaction{
		ID:          id,
		Description: id,
		Amount:      decimal.NewFromInt(amount),
		Type:        typ,
		Date:        d,
		Time:        DefaultTime,
	}
}

func ids(txs []Transaction) []string {
	out := make([]string, len(txs))
	for i, t := range txs {
		out[i] = t.ID
	}
	return out
}

func TestParseFilterKind(t *testing.T) {
	for _, s := range []string{"all", "income", "expense", "daily", "weekly", "monthly", "yearly"} {
		k, err := ParseFilterKind(s)
		if err != nil || string(k) != s {
			t.Fatalf("%q expected kind, got %v (err=%v)", s, k, err)
		}
	}
	if _, err := ParseFilterKind("quarterly"); err == nil {
		t.Fatalf("expected error for unknown selector")
	}
}

func TestFilter(t *testing.T) {
	ref := time.Date(2024, 3, 13, 12, 0, 0, 0, time.UTC) // Wednesday
	txs := []Transaction{
		tx("salary", 1200, NewDate(2024, 3, 1)),
		tx("rent", -800, NewDate(2024, 3, 2)),
		tx("coffee", -4, NewDate(2024, 3, 13)),
		tx("gift", 30, NewDate(2024, 3, 11)), // Monday of ref week
		tx("old", -100, NewDate(2023, 12, 31)),
	}

	tests := []struct {
		name string
		kind FilterKind
		want []string
	}{
		{"all keeps everything", FilterAll, []string{"salary", "rent", "coffee", "gift", "old"}},
		{"income keeps positive amounts", FilterIncome, []string{"salary", "gift"}},
		{"expense keeps negative amounts", FilterExpense, []string{"rent", "coffee", "old"}},
		{"daily keeps the reference day", FilterDaily, []string{"coffee"}},
		{"weekly keeps the monday-started week", FilterWeekly, []string{"coffee", "gift"}},
		{"monthly keeps the reference month", FilterMonthly, []string{"salary", "rent", "coffee", "gift"}},
		{"yearly drops last year", FilterYearly, []string{"salary", "rent", "coffee", "gift"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Filter(txs, tt.kind, ref))
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestFilterDoesNotAliasInput(t *testing.T) {
	txs := []Transaction{tx("a", 1, NewDate(2024, 1, 1))}
	out := Filter(txs, FilterAll, time.Now())
	out[0].ID = "mutated"
	if txs[0].ID != "a" {
		t.Fatalf("filter output aliases the input slice")
	}
}
