package statement

import (
	"context"
	"errors"
	"sync"

	"github.com/Mirzasalman11/bank-statement-to-json/internal/llm"
	"github.com/rs/zerolog"
)

// chunkResult is the typed outcome of one per-chunk extraction call. Failures
// stay attached to their chunk index so the log shows which part of the
// statement was lost, instead of a blanket suppression.
type chunkResult struct {
	index int
	txs   []Transaction
	err   error // *ExtractorCallError or *ExtractorParseError
}

// MergeTransactions runs the extraction service over every chunk, concatenates
// the per-chunk transaction lists in chunk order, and deduplicates them.
//
// Chunks are dispatched with at most concurrency in-flight calls (one at a
// time when concurrency <= 1). Results are reassembled in original chunk order
// before deduplication, since first-seen order decides which duplicate
// survives. A failed chunk contributes zero transactions; one bad chunk never
// aborts the request.
func MergeTransactions(ctx context.Context, extractor llm.Client, chunks []string, concurrency int, log zerolog.Logger) []Transaction {
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]chunkResult, len(chunks))

	var wg sync.WaitGroup
	sem := make(chan struct{}, concurrency)
	for i, chunk := range chunks {
		wg.Add(1)
		go func(i int, chunk string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			log.Info().Int("chunk", i+1).Int("total", len(chunks)).Msg("processing chunk")
			results[i] = extractChunk(ctx, extractor, i, chunk)
		}(i, chunk)
	}
	wg.Wait()

	var all []Transaction
	for _, res := range results {
		if res.err != nil {
			var parseErr *ExtractorParseError
			if errors.As(res.err, &parseErr) {
				log.Error().Err(res.err).Int("chunk", res.index+1).Str("raw_prefix", parseErr.Raw).
					Msg("chunk response not usable, contributing zero transactions")
			} else {
				log.Error().Err(res.err).Int("chunk", res.index+1).
					Msg("chunk extraction call failed, contributing zero transactions")
			}
			continue
		}
		all = append(all, res.txs...)
	}

	unique := Deduplicate(all)
	log.Info().Int("chunks", len(chunks)).Int("total", len(all)).Int("unique", len(unique)).
		Msg("merged transactions across chunks")
	return unique
}

func extractChunk(ctx context.Context, extractor llm.Client, index int, chunk string) chunkResult {
	raw, err := extractor.Extract(ctx, transactionSystemPrompt, buildTransactionPrompt(chunk))
	if err != nil {
		return chunkResult{index: index, err: &ExtractorCallError{Err: err}}
	}
	txs, err := DecodeTransactions(raw)
	if err != nil {
		return chunkResult{index: index, err: err}
	}
	return chunkResult{index: index, txs: txs}
}

// Deduplicate drops transactions whose (date, description, amount) key was
// already seen, keeping the first occurrence. Duplicates are routine here:
// overlapping chunks intentionally re-present boundary transactions.
func Deduplicate(txs []Transaction) []Transaction {
	seen := make(map[Key]struct{}, len(txs))
	unique := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		key := tx.DedupKey()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, tx)
	}
	return unique
}
