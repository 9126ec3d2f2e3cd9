package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAccountInfo_FullObject(t *testing.T) {
	raw := `{
		"account_holder": "JOHN DOE",
		"account_number": "PK36SCBL0000001123456702",
		"statement_period": {"start": "2024-01-01", "end": "2024-01-31"},
		"opening_balance": 1500.75,
		"closing_balance": 980.25,
		"currency": "PKR",
		"statement_format": "wise"
	}`

	info, err := DecodeAccountInfo(raw)
	require.NoError(t, err)

	assert.Equal(t, "JOHN DOE", info.AccountHolder)
	assert.Equal(t, "PK36SCBL0000001123456702", info.AccountNumber)
	assert.Equal(t, "2024-01-01", info.StatementPeriod.Start)
	assert.Equal(t, "2024-01-31", info.StatementPeriod.End)
	assert.Equal(t, 1500.75, info.OpeningBalance)
	assert.Equal(t, 980.25, info.ClosingBalance)
	assert.Equal(t, "PKR", info.Currency)
	assert.Equal(t, "wise", info.StatementFormat)
}

func TestDecodeAccountInfo_MissingFieldsDefault(t *testing.T) {
	info, err := DecodeAccountInfo(`{"currency": "USD"}`)
	require.NoError(t, err)

	assert.Equal(t, "", info.AccountHolder)
	assert.Equal(t, "", info.AccountNumber)
	assert.Equal(t, "", info.StatementPeriod.Start)
	assert.Equal(t, "", info.StatementPeriod.End)
	assert.Zero(t, info.OpeningBalance)
	assert.Zero(t, info.ClosingBalance)
	assert.Equal(t, "USD", info.Currency)
	assert.Equal(t, "unknown", info.StatementFormat)
}

func TestDecodeAccountInfo_QuotedBalances(t *testing.T) {
	info, err := DecodeAccountInfo(`{"opening_balance": "1200.50", "closing_balance": "900"}`)
	require.NoError(t, err)

	assert.Equal(t, 1200.50, info.OpeningBalance)
	assert.Equal(t, 900.0, info.ClosingBalance)
}

func TestDecodeAccountInfo_MarkdownFencedResponse(t *testing.T) {
	raw := "```json\n{\"account_holder\": \"JANE\", \"currency\": \"EUR\"}\n```"

	info, err := DecodeAccountInfo(raw)
	require.NoError(t, err)
	assert.Equal(t, "JANE", info.AccountHolder)
	assert.Equal(t, "EUR", info.Currency)
}

func TestDecodeAccountInfo_InvalidResponses(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: "not json"},
		{name: "array instead of object", raw: `[{"account_holder": "X"}]`},
		{name: "wrong field type", raw: `{"account_holder": 42}`},
		{name: "empty response", raw: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeAccountInfo(tt.raw)
			var parseErr *ExtractorParseError
			require.ErrorAs(t, err, &parseErr)
		})
	}
}

func TestDecodeTransactions_WellFormedArray(t *testing.T) {
	raw := `[
		{"date": "2024-01-01", "description": "Coffee", "type": "debit",
		 "amount": 5.0, "amount_with_sign": -5.0, "running_balance": 995.0, "reference": "TX1"},
		{"date": "2024-01-02", "description": "Salary", "type": "credit",
		 "amount": 2000.0, "amount_with_sign": 2000.0, "running_balance": 2995.0, "reference": ""}
	]`

	txs, err := DecodeTransactions(raw)
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.Equal(t, "2024-01-01", txs[0].Date)
	assert.Equal(t, "Coffee", txs[0].Description)
	assert.Equal(t, TypeDebit, txs[0].Type)
	assert.Equal(t, 5.0, txs[0].Amount)
	assert.Equal(t, -5.0, txs[0].AmountWithSign)
	assert.Equal(t, 995.0, txs[0].RunningBalance)
	assert.Equal(t, "TX1", txs[0].Reference)

	assert.Equal(t, TypeCredit, txs[1].Type)
}

func TestDecodeTransactions_EmptyArray(t *testing.T) {
	txs, err := DecodeTransactions("[]")
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestDecodeTransactions_NormalizesAmountAndType(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantType string
		wantAmt  float64
	}{
		{
			name:     "negative amount forced absolute",
			raw:      `[{"date": "2024-01-01", "description": "Fee", "type": "debit", "amount": -3.5, "amount_with_sign": -3.5}]`,
			wantType: TypeDebit,
			wantAmt:  3.5,
		},
		{
			name:     "unknown type derived from negative sign",
			raw:      `[{"date": "2024-01-01", "description": "Transfer sent", "type": "withdrawal", "amount": 10.0, "amount_with_sign": -10.0}]`,
			wantType: TypeDebit,
			wantAmt:  10.0,
		},
		{
			name:     "unknown type derived from positive sign",
			raw:      `[{"date": "2024-01-01", "description": "Transfer received", "type": "", "amount": 10.0, "amount_with_sign": 10.0}]`,
			wantType: TypeCredit,
			wantAmt:  10.0,
		},
		{
			name:     "uppercase type normalized",
			raw:      `[{"date": "2024-01-01", "description": "Rent", "type": "DEBIT", "amount": 800.0, "amount_with_sign": -800.0}]`,
			wantType: TypeDebit,
			wantAmt:  800.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txs, err := DecodeTransactions(tt.raw)
			require.NoError(t, err)
			require.Len(t, txs, 1)
			assert.Equal(t, tt.wantType, txs[0].Type)
			assert.Equal(t, tt.wantAmt, txs[0].Amount)
		})
	}
}

func TestDecodeTransactions_InvalidResponses(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: "I could not find any transactions."},
		{name: "object instead of array", raw: `{"transactions": []}`},
		{name: "item with wrong field type", raw: `[{"date": 20240101, "description": "X"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeTransactions(tt.raw)
			var parseErr *ExtractorParseError
			require.ErrorAs(t, err, &parseErr)
		})
	}
}
