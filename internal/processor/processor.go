package processor

import (
	"context"
	"errors"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/sheikh-saqib/payments-engine/internal/accountbook"
	"github.com/sheikh-saqib/payments-engine/internal/csvio"
	"github.com/sheikh-saqib/payments-engine/internal/models"
)

// Stats counts what one run saw at the input boundary.
type Stats struct {
	RowsRead  int
	Malformed int
	Processed int
}

// Processor drives one synchronous pass over the input: every valid record
// is fed once, in arrival order, into the account book. There is no
// reordering, batching or parallelism.
type Processor struct {
	book  *accountbook.AccountBook
	runID string
}

// New creates a processor for one run.
func New(book *accountbook.AccountBook, runID string) *Processor {
	return &Processor{book: book, runID: runID}
}

// Run consumes the reader until EOF and returns the final summaries.
// Malformed rows are counted and skipped; the only fatal condition is a
// broken input stream.
func (p *Processor) Run(ctx context.Context, reader *csvio.Reader) ([]models.AccountSummary, Stats, error) {
	var stats Stats
	for {
		tx, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if errors.Is(err, csvio.ErrMalformedRow) {
			stats.RowsRead++
			stats.Malformed++
			log.Warn().Err(err).Str("run_id", p.runID).Msg("skipping malformed row")
			continue
		}
		if err != nil {
			return nil, stats, err
		}
		stats.RowsRead++
		stats.Processed++
		p.book.Apply(ctx, tx)
	}

	log.Info().
		Str("run_id", p.runID).
		Int("rows", stats.RowsRead).
		Int("malformed", stats.Malformed).
		Int("processed", stats.Processed).
		Msg("run complete")
	return p.book.Summaries(), stats, nil
}
