package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/sheikh-saqib/payments-engine/internal/accountbook"
	"github.com/sheikh-saqib/payments-engine/internal/config"
	"github.com/sheikh-saqib/payments-engine/internal/csvio"
	eventlog "github.com/sheikh-saqib/payments-engine/internal/events/logging"
	interfaces "github.com/sheikh-saqib/payments-engine/internal/interfaces"
	"github.com/sheikh-saqib/payments-engine/internal/ledger"
	"github.com/sheikh-saqib/payments-engine/internal/logging"
	"github.com/sheikh-saqib/payments-engine/internal/processor"
	"github.com/sheikh-saqib/payments-engine/internal/storage/memory"
)

func main() {
	cfg, err := config.LoadApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	logging.Init(cfg.Log)

	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <transactions.csv>\n", os.Args[0])
		os.Exit(2)
	}

	input, err := os.Open(os.Args[1])
	if err != nil {
		log.Error().Err(err).Str("path", os.Args[1]).Msg("cannot open transactions file")
		os.Exit(1)
	}
	defer input.Close()

	runID := uuid.New().String()

	var store interfaces.DepositStore = memory.NewMemoryDepositStore()
	var publisher interfaces.EventPublisher = eventlog.NewPublisher()
	book := accountbook.NewAccountBook(ledger.NewLedger(store), publisher, runID)

	summaries, _, err := processor.New(book, runID).Run(context.Background(), csvio.NewReader(input))
	if err != nil {
		log.Error().Err(err).Str("run_id", runID).Msg("run failed")
		os.Exit(1)
	}

	if err := csvio.NewWriter(os.Stdout).Write(summaries); err != nil {
		log.Error().Err(err).Str("run_id", runID).Msg("cannot write report")
		os.Exit(1)
	}
}
