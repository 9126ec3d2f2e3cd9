package statement

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Mirzasalman11/bank-statement-to-json/internal/llm"
)

// DecodeAccountInfo parses the extractor's account-info response. The response
// must be a JSON object passing the account schema; each field is then coerced
// with a per-field default, so a partially filled object still yields a usable
// record. Anything worse returns an ExtractorParseError and the caller falls
// back to DefaultAccountInfo.
func DecodeAccountInfo(raw string) (AccountInfo, error) {
	clean := llm.CleanJSON(raw)

	var v any
	if err := json.Unmarshal([]byte(clean), &v); err != nil {
		return AccountInfo{}, newParseError(raw, fmt.Errorf("invalid JSON: %w", err))
	}
	if err := accountInfoSchema.Validate(v); err != nil {
		return AccountInfo{}, newParseError(raw, fmt.Errorf("account info shape: %w", err))
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return AccountInfo{}, newParseError(raw, fmt.Errorf("account info is %T, want object", v))
	}

	info := AccountInfo{
		AccountHolder:   stringField(obj, "account_holder"),
		AccountNumber:   stringField(obj, "account_number"),
		OpeningBalance:  numberField(obj, "opening_balance"),
		ClosingBalance:  numberField(obj, "closing_balance"),
		Currency:        stringField(obj, "currency"),
		StatementFormat: stringField(obj, "statement_format"),
	}
	if period, ok := obj["statement_period"].(map[string]any); ok {
		info.StatementPeriod.Start = stringField(period, "start")
		info.StatementPeriod.End = stringField(period, "end")
	}
	if info.StatementFormat == "" {
		info.StatementFormat = "unknown"
	}
	return info, nil
}

// DecodeTransactions parses one chunk's extraction response: a JSON array of
// transaction objects. A response that is not valid JSON, or whose shape fails
// the transaction schema, fails the whole chunk (the merger then contributes
// zero transactions for it and moves on).
func DecodeTransactions(raw string) ([]Transaction, error) {
	clean := llm.CleanJSON(raw)

	var v any
	if err := json.Unmarshal([]byte(clean), &v); err != nil {
		return nil, newParseError(raw, fmt.Errorf("invalid JSON: %w", err))
	}
	if err := transactionsSchema.Validate(v); err != nil {
		return nil, newParseError(raw, fmt.Errorf("transactions shape: %w", err))
	}

	items, ok := v.([]any)
	if !ok {
		return nil, newParseError(raw, fmt.Errorf("transactions are %T, want array", v))
	}

	txs := make([]Transaction, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			// Guarded by the schema already; skip rather than fail the chunk.
			continue
		}
		txs = append(txs, coerceTransaction(obj))
	}
	return txs, nil
}

// coerceTransaction maps one validated object into a Transaction, normalizing
// the fields the model gets wrong most often: the amount is forced
// non-negative, and an unrecognized type tag is derived from the sign of
// amount_with_sign.
func coerceTransaction(obj map[string]any) Transaction {
	t := Transaction{
		Date:           stringField(obj, "date"),
		Description:    stringField(obj, "description"),
		Type:           strings.ToLower(stringField(obj, "type")),
		Amount:         math.Abs(numberField(obj, "amount")),
		AmountWithSign: numberField(obj, "amount_with_sign"),
		RunningBalance: numberField(obj, "running_balance"),
		Reference:      stringField(obj, "reference"),
	}
	if t.Type != TypeDebit && t.Type != TypeCredit {
		if t.AmountWithSign < 0 {
			t.Type = TypeDebit
		} else {
			t.Type = TypeCredit
		}
	}
	return t
}

// stringField returns the trimmed string at key, or "" when the key is
// absent, null, or not a string.
func stringField(m map[string]any, key string) string {
	if s, ok := m[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// numberField returns the number at key, accepting JSON numbers and numeric
// strings (some models quote money values). Absent, null, or unparsable
// values yield zero.
func numberField(m map[string]any, key string) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
