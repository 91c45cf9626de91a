package assess

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"skillcheck/internal/llm"
)

// ErrEmptyResponse means the model returned no usable text.
var ErrEmptyResponse = errors.New("empty response received")

// ErrNoQuestions means the response parsed to zero questions.
var ErrNoQuestions = errors.New("no questions could be parsed from the response")

// GenerateInput holds everything needed to generate one assessment.
type GenerateInput struct {
	Topic         string
	Difficulty    Difficulty
	Category      Category
	QuestionCount int
}

// Generator produces assessments using an LLM provider.
type Generator interface {
	// Generate builds the prompt, calls the model, and parses the
	// result into a ready-to-take Assessment.
	Generate(ctx context.Context, input GenerateInput) (*Assessment, error)
}

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// Generate produces an assessment for the given input context.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*Assessment, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System:      systemPrompt,
		Prompt:      BuildPrompt(input.Topic, input.Difficulty, input.QuestionCount, input.Category),
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("question generation failed: %w", err)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyResponse
	}

	questions := Parse(text)
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	return &Assessment{
		Topic:            input.Topic,
		Difficulty:       input.Difficulty,
		Category:         input.Category,
		Questions:        questions,
		TimeLimitSeconds: TimeLimitSeconds(input.Difficulty, len(questions)),
		StartedAt:        time.Now().UTC(),
	}, nil
}
