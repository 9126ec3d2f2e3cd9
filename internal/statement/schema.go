package statement

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// The extraction service is told exactly which fields to produce, but model
// output drifts. These schemas pin down what we accept before coercion:
// strings for text fields, numbers (or numeric strings, which some models
// emit for money) for amounts, and nothing required - absent fields fall back
// to defaults instead of failing the document.

func accountInfoSchemaMap() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"account_holder": map[string]any{"type": "string"},
			"account_number": map[string]any{"type": "string"},
			"statement_period": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"start": map[string]any{"type": "string"},
					"end":   map[string]any{"type": "string"},
				},
			},
			"opening_balance":  moneyProp(),
			"closing_balance":  moneyProp(),
			"currency":         map[string]any{"type": "string"},
			"statement_format": map[string]any{"type": "string"},
		},
	}
}

func transactionsSchemaMap() map[string]any {
	return map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"date":             map[string]any{"type": "string"},
				"description":      map[string]any{"type": "string"},
				"type":             map[string]any{"type": "string"},
				"amount":           moneyProp(),
				"amount_with_sign": moneyProp(),
				"running_balance":  moneyProp(),
				"reference":        map[string]any{"type": "string"},
			},
		},
	}
}

func moneyProp() map[string]any {
	return map[string]any{
		"type": []any{"number", "string", "null"},
	}
}

var (
	accountInfoSchema  = mustCompileSchema("account_info.json", accountInfoSchemaMap())
	transactionsSchema = mustCompileSchema("transactions.json", transactionsSchemaMap())
)

func mustCompileSchema(name string, schemaMap map[string]any) *jsonschema.Schema {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		panic(fmt.Sprintf("marshal schema %s: %v", name, err))
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, bytes.NewReader(b)); err != nil {
		panic(fmt.Sprintf("add schema %s: %v", name, err))
	}
	schema, err := compiler.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("compile schema %s: %v", name, err))
	}
	return schema
}
