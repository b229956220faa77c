package gpt

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/povarna/generative-ai-agents/web-rag-agent/internal/llm"
)

const GroqBaseURL = "https://api.groq.com/openai/v1"

// Client talks to OpenAI or any OpenAI-compatible chat API such as Groq.
type Client struct {
	Client  openai.Client
	ModelID string
}

var _ llm.LLMClient = (*Client)(nil)

// NewClient builds a chat client. An empty baseURL targets OpenAI. Retries
// are left to the caller so a slow provider cannot multiply request latency.
func NewClient(apiKey string, model string, baseURL string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		return nil, fmt.Errorf("model ID is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &Client{
		Client:  openai.NewClient(opts...),
		ModelID: model,
	}, nil
}

func (c *Client) InvokeModel(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.ModelID),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(request.Prompt),
		},
		Temperature: openai.Float(request.Temperature),
	}
	if request.MaxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(request.MaxTokens))
	}

	completion, err := c.Client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("chat completion with %s failed: %w", c.ModelID, err)
	}

	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("%s: %w", c.ModelID, llm.ErrNoCompletion)
	}

	choice := completion.Choices[0]
	return &llm.LLMResponse{
		Content:    choice.Message.Content,
		StopReason: string(choice.FinishReason),
		Usage: llm.Usage{
			InputTokens:  int(completion.Usage.PromptTokens),
			OutputTokens: int(completion.Usage.CompletionTokens),
		},
	}, nil
}

func (c *Client) ModelName() string {
	return c.ModelID
}
