package llm

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"
)

// GeminiConfig carries everything the Gemini client needs. No package-level
// client or hidden state; callers build one client and pass it around.
type GeminiConfig struct {
	// APIKey for the Gemini API. When empty the client falls back to the
	// GEMINI_API_KEY / GOOGLE_API_KEY environment variables honoured by the
	// genai SDK.
	APIKey string

	// Model is the Gemini model identifier, e.g. "gemini-2.5-flash".
	Model string

	// Timeout bounds each extraction call. A timed-out call surfaces as an
	// ordinary error; the pipeline treats it as a per-chunk failure.
	Timeout time.Duration
}

// GeminiClient implements Client against the Gemini API.
type GeminiClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiClient creates a Gemini-backed extraction client.
func NewGeminiClient(ctx context.Context, cfg GeminiConfig) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiClient{client: client, model: cfg.Model, timeout: cfg.Timeout}, nil
}

// Extract sends one prompt to the model and returns the raw response text.
// Temperature stays low: the prompts ask for strict JSON, not prose.
func (c *GeminiClient) Extract(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: userPrompt},
			},
		},
	}

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.2),
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{
				{Text: systemPrompt},
			},
		},
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from model %s", c.model)
	}
	return text, nil
}

var _ Client = (*GeminiClient)(nil)
