package llm

import (
	"context"
	"encoding/json"
)

// Provider is the text-generation collaborator: one prompt in, one
// completion out.
type Provider interface {
	// Generate sends a prompt to the model and returns its completion.
	// When the request carries a Schema, the provider asks for structured
	// JSON and validates it; otherwise the content is the raw text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System sets the model's role and output constraints.
	System string

	// Prompt is the user message. Question generation is single-turn, so
	// a plain string replaces a message list here.
	Prompt string

	// Schema, when set, requests JSON conforming to it via the provider's
	// structured-output mechanism. Nil means free text (the question
	// grammar is plain text, so this is nil on the generation path).
	Schema *Schema

	// MaxTokens caps the completion length.
	MaxTokens int

	// Temperature controls randomness, 0.0-1.0. Zero means deterministic.
	Temperature float64
}

// Schema defines a JSON structure a response must conform to.
type Schema struct {
	// Name identifies this schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case.
	Name string

	// Description is sent to the model to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the completion. Validated JSON when a Schema was set,
	// raw text bytes otherwise.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason is normalized to: "end", "max_tokens", "error".
	StopReason string
}

// Text returns the completion as a plain string.
func (r *Response) Text() string {
	return string(r.Content)
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
