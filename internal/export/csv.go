// Package export renders transactions as CSV for download. It is a pure
// consumer of the ledger's list output.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"cashbook/internal/core"
)

// Header is the fixed CSV column layout.
var Header = []string{"Date", "Time", "Description", "Type", "Amount"}

// CSVWriter writes transactions in a date range to CSV format.
type CSVWriter struct{}

// WriteToFile writes the range export to a file at the given path.
func (w *CSVWriter) WriteToFile(path string, txs []core.Transaction, start, end core.Date) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, txs, start, end)
}

// Write emits one row per transaction dated within [start, end], both ends
// inclusive (end is bumped by one day internally to make the comparison
// half-open). Amounts are written as positive magnitudes with two decimals;
// the Type column carries the direction. Returns the number of data rows.
func (w *CSVWriter) Write(out io.Writer, txs []core.Transaction, start, end core.Date) (int, error) {
	window := core.Window{
		Start: start.Time,
		End:   end.AddDate(0, 0, 1),
	}

	rows := make([]core.Transaction, 0, len(txs))
	for _, t := range txs {
		if window.Contains(t.Date) {
			rows = append(rows, t)
		}
	}
	core.SortByDateDesc(rows)

	writer := csv.NewWriter(out)

	if err := writer.Write(Header); err != nil {
		return 0, fmt.Errorf("write CSV header: %w", err)
	}
	for _, t := range rows {
		row := []string{
			t.Date.Format("2006-01-02"),
			t.Time,
			t.Description,
			string(t.Type),
			t.Amount.Abs().StringFixed(2),
		}
		if err := writer.Write(row); err != nil {
			return 0, fmt.Errorf("write CSV row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return 0, fmt.Errorf("flush CSV: %w", err)
	}
	return len(rows), nil
}
