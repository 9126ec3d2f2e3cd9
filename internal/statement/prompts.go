package statement

import "strings"

const accountSystemPrompt = "You are a finance expert that extracts structured data from raw bank statements. " +
	"Extract ONLY the account information from the statement, not the transactions. " +
	"IMPORTANT: Pay special attention to finding the account holder name, account number, and statement period. " +
	"Look carefully through the entire text for these details, as they may be formatted in various ways."

const transactionSystemPrompt = "You are a finance expert that extracts structured data from raw bank statements. " +
	"Extract ONLY the transactions from the statement chunk. " +
	"IMPORTANT: Make sure to capture ALL transaction types, including currency conversions. " +
	"Each line that contains a date, amount, and description should be considered a transaction."

// buildAccountPrompt embeds the head of the statement into the account-info
// instruction. The head bound is a caller decision; account metadata is
// assumed to live near the top of the document.
func buildAccountPrompt(head string) string {
	var b strings.Builder
	b.WriteString(`Extract ONLY the following account information from this bank statement into JSON:

{
  "account_holder": "",
  "account_number": "",
  "statement_period": {
    "start": "YYYY-MM-DD",
    "end": "YYYY-MM-DD"
  },
  "opening_balance": 0.0,
  "closing_balance": 0.0,
  "currency": "",
  "statement_format": "wise/nayapay/bank_of_america/traditional/unknown"
}

Notes on the fields:
- account_holder: look for names in ALL CAPS or special formatting.
- account_number: look for account numbers, IBAN, or any numerical identifiers.
- statement_period: convert any date format to ISO (YYYY-MM-DD).
- opening_balance / closing_balance: numeric values only.
- currency: USD, EUR, GBP, PKR, etc.
- statement_format: identify the bank if possible.

IMPORTANT: Examine the entire text carefully for account holder name and account number.
They might appear in different formats or locations.

Return ONLY valid raw JSON. Do NOT wrap the response in code fences.

STATEMENT TEXT:
`)
	b.WriteString(head)
	return b.String()
}

// buildTransactionPrompt embeds one chunk into the transaction-extraction
// instruction, including the debit/credit classification rules.
func buildTransactionPrompt(chunk string) string {
	var b strings.Builder
	b.WriteString(`Extract ONLY the transactions from this bank statement chunk into a JSON array:

[
  {
    "date": "YYYY-MM-DD",
    "description": "cleaned description",
    "type": "debit/credit",
    "amount": 0.0,
    "amount_with_sign": 0.0,
    "running_balance": 0.0,
    "reference": "if available"
  }
]

Notes on the fields:
- date: convert any date format to ISO.
- type: debit for negative amounts, credit for positive.
- amount: absolute value.
- amount_with_sign: negative for debits, positive for credits.
- running_balance: balance after this transaction, if shown.
- reference: any reference number or additional info.

IMPORTANT INSTRUCTIONS:
1. Include ALL transactions, especially currency conversions (e.g., 'Converted USD to PKR').
2. For currency conversions, the description should be 'Converted USD to PKR' or similar.
3. If the transaction has a negative amount or words like 'sent', 'payment', 'withdrawal', it's a debit (type: "debit").
4. If the transaction has a positive amount or words like 'received', 'deposit', it's a credit (type: "credit").

Return ONLY valid raw JSON. Do NOT wrap the response in code fences.
Output must begin with "[" and end with "]".

STATEMENT CHUNK:
`)
	b.WriteString(chunk)
	return b.String()
}
