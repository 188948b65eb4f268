package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// DefaultTime backfills records created before the time field existed.
const DefaultTime = "00:00"

type (
	TransactionType string

	Date struct {
		time.Time
	}

	// Transaction is a single ledger entry. The sign of Amount encodes the
	// direction: positive for income, negative for expense. Type is stored
	// explicitly and must stay consistent with the sign.
	Transaction struct {
		ID          string          `json:"id"`
		Description string          `json:"description"`
		Amount      decimal.Decimal `json:"amount"`
		Type        TransactionType `json:"type"`
		Date        Date            `json:"date"`
		Time        string          `json:"time"`
	}
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrEmptyDescription = errors.New("empty description")
	ErrInvalidType      = errors.New("invalid transaction type")
)

// NewDate creates a new Date from year, month, day
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) Validate() error {
	if d.IsZero() {
		return errors.New("date cannot be zero")
	}
	return nil
}

// MarshalJSON renders the date as YYYY-MM-DD, the shape the backing store
// has always used.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(time.DateOnly))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return fmt.Errorf("parse date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

func (t TransactionType) Validate() error {
	switch t {
	case Income, Expense:
		return nil
	default:
		return ErrInvalidType
	}
}

// Validate checks the creation-time invariants: non-empty description,
// non-zero amount, and type consistent with the amount's sign.
func (t Transaction) Validate() error {
	if len(strings.TrimSpace(t.Description)) == 0 {
		return ErrEmptyDescription
	}
	if t.Amount.IsZero() {
		return ErrInvalidAmount
	}
	if err := t.Type.Validate(); err != nil {
		return err
	}
	if (t.Type == Income) != t.Amount.IsPositive() {
		return fmt.Errorf("%w: sign does not match type %s", ErrInvalidAmount, t.Type)
	}
	if err := t.Date.Validate(); err != nil {
		return err
	}
	return nil
}

// SignedAmount applies the direction encoded by typ to a positive magnitude.
func SignedAmount(magnitude decimal.Decimal, typ TransactionType) decimal.Decimal {
	if typ == Expense {
		return magnitude.Abs().Neg()
	}
	return magnitude.Abs()
}

// SortByDateDesc orders transactions newest first for display and export.
// Within the same day, the clock time string breaks ties (later first).
func SortByDateDesc(txs []Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		if !txs[i].Date.Equal(txs[j].Date.Time) {
			return txs[i].Date.After(txs[j].Date.Time)
		}
		return txs[i].Time > txs[j].Time
	})
}
