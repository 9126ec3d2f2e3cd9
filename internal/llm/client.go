// Package llm wraps the external natural-language extraction service. The rest
// of the codebase depends only on the Client interface; the concrete Gemini
// implementation lives in gemini.go.
package llm

import "context"

// Client is the field-extraction capability: given a system instruction and a
// user prompt it returns the raw response text, which callers parse as JSON.
type Client interface {
	Extract(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// ExtractFunc adapts a plain function to the Client interface.
type ExtractFunc func(ctx context.Context, systemPrompt, userPrompt string) (string, error)

func (f ExtractFunc) Extract(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return f(ctx, systemPrompt, userPrompt)
}
