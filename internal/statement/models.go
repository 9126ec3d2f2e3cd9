package statement

// StatementPeriod is the date range a statement covers, ISO-8601 dates.
// Empty strings mean the period could not be determined.
type StatementPeriod struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// AccountInfo holds statement-level metadata extracted from the head of the
// document. Every field is always present in the output JSON; extraction
// failures produce the zero values (see DefaultAccountInfo), never nulls.
type AccountInfo struct {
	AccountHolder   string          `json:"account_holder"`
	AccountNumber   string          `json:"account_number"`
	StatementPeriod StatementPeriod `json:"statement_period"`
	OpeningBalance  float64         `json:"opening_balance"`
	ClosingBalance  float64         `json:"closing_balance"`
	Currency        string          `json:"currency"`
	StatementFormat string          `json:"statement_format"`
}

// Transaction type tags. The extraction service is instructed to classify each
// line as one of these; anything else is normalized from the amount sign.
const (
	TypeDebit  = "debit"
	TypeCredit = "credit"
)

// Transaction is one normalized statement line.
type Transaction struct {
	Date        string `json:"date"` // ISO "YYYY-MM-DD"
	Description string `json:"description"`
	Type        string `json:"type"` // "debit" or "credit"

	// Amount is the absolute value; AmountWithSign is negative for debits and
	// positive for credits. RunningBalance is best-effort and may be zero when
	// the statement does not carry a balance column.
	Amount         float64 `json:"amount"`
	AmountWithSign float64 `json:"amount_with_sign"`
	RunningBalance float64 `json:"running_balance"`

	Reference string `json:"reference"`
}

// Key is the deduplication identity of a transaction. Two transactions with
// equal keys are considered the same statement line re-extracted from an
// overlapping chunk; the first occurrence wins.
type Key struct {
	Date        string
	Description string
	Amount      float64
}

// DedupKey returns the transaction's deduplication identity.
func (t Transaction) DedupKey() Key {
	return Key{Date: t.Date, Description: t.Description, Amount: t.Amount}
}

// Result is the final output record: account metadata flattened at the top
// level plus the deduplicated transaction list. Its JSON encoding is the wire
// contract served verbatim by the HTTP layer.
type Result struct {
	AccountInfo
	Transactions []Transaction `json:"transactions"`
}

// DefaultAccountInfo is the degrade-gracefully fallback used whenever the
// account-info extraction call fails or returns unusable output.
func DefaultAccountInfo() AccountInfo {
	return AccountInfo{StatementFormat: "unknown"}
}

// Assemble merges account metadata and the deduplicated transaction list into
// the final result. Pure; no validation beyond shape. In particular it does
// not cross-check opening_balance + sum(amount_with_sign) against
// closing_balance - the pipeline only logs that comparison.
func Assemble(info AccountInfo, txs []Transaction) *Result {
	if txs == nil {
		txs = []Transaction{}
	}
	return &Result{AccountInfo: info, Transactions: txs}
}
