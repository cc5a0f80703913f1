package csvio

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/sheikh-saqib/payments-engine/internal/models"
)

// Writer emits the per-client summary report as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter wraps w in a report encoder.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// Write emits the header followed by one row per summary. Amounts carry
// exactly four fractional digits.
func (w *Writer) Write(summaries []models.AccountSummary) error {
	if err := w.csv.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return err
	}
	for _, s := range summaries {
		row := []string{
			strconv.FormatUint(uint64(s.Client), 10),
			s.Available.StringFixed(4),
			s.Held.StringFixed(4),
			s.Total.StringFixed(4),
			strconv.FormatBool(s.Locked),
		}
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	w.csv.Flush()
	return w.csv.Error()
}
