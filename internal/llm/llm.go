// Package llm defines the completion interface shared by the chat providers.
package llm

import (
	"context"
	"errors"
)

// ErrNoCompletion is returned when the provider answers without any text.
var ErrNoCompletion = errors.New("model returned no completion")

// LLMClient generates a completion for a single-turn prompt. Implementations
// are safe for concurrent use.
type LLMClient interface {
	InvokeModel(ctx context.Context, request LLMRequest) (*LLMResponse, error)
	ModelName() string
}

type LLMRequest struct {
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// Usage holds provider-reported token counts; zero when not reported.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

type LLMResponse struct {
	Content    string
	StopReason string
	Usage      Usage
}

// Truncated reports whether generation stopped on the token limit.
func (r *LLMResponse) Truncated() bool {
	return r.StopReason == "length" || r.StopReason == "max_tokens"
}
