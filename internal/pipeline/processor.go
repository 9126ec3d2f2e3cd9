// Package pipeline orchestrates one statement request end to end: PDF text
// extraction, chunking, per-chunk field extraction, merge, and assembly.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Mirzasalman11/bank-statement-to-json/internal/llm"
	"github.com/Mirzasalman11/bank-statement-to-json/internal/statement"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// TextSource yields the flattened statement text for a PDF. Satisfied by
// *pdftext.Extractor; an interface so tests can substitute fixed text.
type TextSource interface {
	Extract(data []byte) (string, error)
}

// Config carries the per-request tuning knobs. There is no hidden global
// state: one Processor is built from one Config and one extraction client.
type Config struct {
	// MaxChunkChars bounds each chunk submitted to the extraction service.
	MaxChunkChars int

	// ChunkOverlap is the number of characters repeated at each chunk
	// boundary. Must be smaller than MaxChunkChars.
	ChunkOverlap int

	// AccountHeadChars bounds how much of the document head goes into the
	// account-info prompt.
	AccountHeadChars int

	// ChunkConcurrency caps in-flight extraction calls. 1 means strictly
	// sequential processing.
	ChunkConcurrency int
}

// PipelineError wraps any unexpected failure so the HTTP boundary surfaces a
// single message instead of a partial result.
type PipelineError struct {
	Err error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("failed to process PDF: %v", e.Err)
}

func (e *PipelineError) Unwrap() error { return e.Err }

// Processor runs the statement pipeline. Safe for concurrent use: all
// per-request state lives on the stack of Process.
type Processor struct {
	source    TextSource
	extractor llm.Client
	cfg       Config
	log       zerolog.Logger
}

// NewProcessor builds a Processor from a text source, an extraction client
// and config.
func NewProcessor(source TextSource, extractor llm.Client, cfg Config, log zerolog.Logger) *Processor {
	return &Processor{source: source, extractor: extractor, cfg: cfg, log: log}
}

// Process turns a PDF into a StatementResult.
//
// Sequence: extract text from the PDF, fail fast with statement.ErrNoContent
// if the document yields nothing (no extraction-service call is made on empty
// input), then resolve account info on the head and merge transactions across
// chunks, and assemble. Account-info and per-chunk failures degrade gracefully
// inside their components; everything else comes back as a *PipelineError.
func (p *Processor) Process(ctx context.Context, pdfData []byte) (*statement.Result, error) {
	text, err := p.source.Extract(pdfData)
	if err != nil {
		return nil, &PipelineError{Err: err}
	}
	if strings.TrimSpace(text) == "" {
		return nil, statement.ErrNoContent
	}

	chunks, err := statement.Split(text, p.cfg.MaxChunkChars, p.cfg.ChunkOverlap)
	if err != nil {
		var confErr *statement.ConfigurationError
		if errors.As(err, &confErr) {
			return nil, err
		}
		return nil, &PipelineError{Err: err}
	}
	p.log.Info().Int("chunks", len(chunks)).Int("overlap", p.cfg.ChunkOverlap).
		Msg("split statement text into chunks")

	info := statement.ResolveAccountInfo(ctx, p.extractor, text, p.cfg.AccountHeadChars, p.log)
	txs := statement.MergeTransactions(ctx, p.extractor, chunks, p.cfg.ChunkConcurrency, p.log)

	result := statement.Assemble(info, txs)
	p.logBalanceCheck(result)
	return result, nil
}

// logBalanceCheck compares opening_balance + sum(amount_with_sign) against
// closing_balance, using decimals to keep float drift out of the comparison.
// The result is logged only: rejecting statements over a mismatch would turn
// away documents the extractor handled fine apart from one missed line.
func (p *Processor) logBalanceCheck(res *statement.Result) {
	if res.OpeningBalance == 0 && res.ClosingBalance == 0 {
		// Balances were not extracted; nothing to compare.
		return
	}

	sum := decimal.Zero
	for _, tx := range res.Transactions {
		sum = sum.Add(decimal.NewFromFloat(tx.AmountWithSign))
	}
	expected := decimal.NewFromFloat(res.OpeningBalance).Add(sum)
	closing := decimal.NewFromFloat(res.ClosingBalance)

	if expected.Equal(closing) {
		p.log.Info().Str("closing_balance", closing.String()).Msg("statement balances reconcile")
		return
	}
	p.log.Warn().
		Str("opening_balance", decimal.NewFromFloat(res.OpeningBalance).String()).
		Str("transactions_sum", sum.String()).
		Str("expected_closing", expected.String()).
		Str("reported_closing", closing.String()).
		Msg("statement balances do not reconcile")
}
