package statement

import (
	"context"

	"github.com/Mirzasalman11/bank-statement-to-json/internal/llm"
	"github.com/rs/zerolog"
)

// ResolveAccountInfo extracts statement-level metadata with a single call on
// the head of the document. It never fails: any call or parse problem is
// logged and replaced with the all-default record, because downstream
// consumers always need some account-info shape.
//
// headChars bounds how much of the text goes into the prompt; account metadata
// lives near the top of a statement, and the bound keeps the prompt small.
func ResolveAccountInfo(ctx context.Context, extractor llm.Client, text string, headChars int, log zerolog.Logger) AccountInfo {
	head := text
	if headChars > 0 && len(head) > headChars {
		head = head[:headChars]
	}

	raw, err := extractor.Extract(ctx, accountSystemPrompt, buildAccountPrompt(head))
	if err != nil {
		callErr := &ExtractorCallError{Err: err}
		log.Error().Err(callErr).Msg("account info extraction call failed, using defaults")
		return DefaultAccountInfo()
	}

	info, err := DecodeAccountInfo(raw)
	if err != nil {
		log.Error().Err(err).Msg("account info response not usable, using defaults")
		return DefaultAccountInfo()
	}

	log.Info().
		Str("account_number", info.AccountNumber).
		Str("statement_format", info.StatementFormat).
		Msg("extracted account information")
	return info
}
