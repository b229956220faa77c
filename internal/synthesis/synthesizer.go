package synthesis

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"text/template"

	"github.com/povarna/generative-ai-agents/web-rag-agent/internal/config"
	"github.com/povarna/generative-ai-agents/web-rag-agent/internal/llm"
	"github.com/povarna/generative-ai-agents/web-rag-agent/internal/models"
	"github.com/rs/zerolog"
)

const passageSeparator = "\n\n"

type qaPromptData struct {
	Context  string
	Question string
}

type summaryPromptData struct {
	Content string
}

// Synthesizer assembles prompts from passages and calls the LLM once per
// request.
type Synthesizer struct {
	llmClient       llm.LLMClient
	qaTemplate      *template.Template
	summaryTemplate *template.Template
	temperature     float64
	maxTokens       int
	summaryMaxChars int
	logger          *zerolog.Logger
}

func NewSynthesizer(
	llmClient llm.LLMClient,
	generation config.GenerationConfig,
	prompts config.PromptsConfig,
	logger *zerolog.Logger,
) (*Synthesizer, error) {
	qaTemplate, err := template.New("qa").Parse(prompts.QA)
	if err != nil {
		return nil, fmt.Errorf("failed to parse QA prompt template: %w", err)
	}

	summaryTemplate, err := template.New("summary").Parse(prompts.Summary)
	if err != nil {
		return nil, fmt.Errorf("failed to parse summary prompt template: %w", err)
	}

	return &Synthesizer{
		llmClient:       llmClient,
		qaTemplate:      qaTemplate,
		summaryTemplate: summaryTemplate,
		temperature:     generation.Temperature,
		maxTokens:       generation.MaxTokens,
		summaryMaxChars: generation.SummaryMaxChars,
		logger:          logger,
	}, nil
}

// Answer stuffs every retrieved passage into the QA prompt. Sources follow
// retrieval order and keep duplicates. With no passages the model is still
// asked, with an empty context.
func (s *Synthesizer) Answer(ctx context.Context, query string, retrieved []models.ScoredChunk) (*models.AnswerResult, error) {
	texts := make([]string, len(retrieved))
	sources := make([]string, len(retrieved))
	for i, r := range retrieved {
		texts[i] = r.Chunk.Text
		sources[i] = r.Chunk.Source
	}

	prompt, err := render(s.qaTemplate, qaPromptData{
		Context:  strings.Join(texts, passageSeparator),
		Question: query,
	})
	if err != nil {
		return nil, err
	}

	answer, err := s.invoke(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return &models.AnswerResult{Text: answer, Sources: sources}, nil
}

// Summarize joins all passages, keeps the first summaryMaxChars runes and asks
// for a structured summary.
func (s *Synthesizer) Summarize(ctx context.Context, chunks []models.Chunk) (*models.AnswerResult, error) {
	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}

	content := TruncateRunes(strings.Join(texts, passageSeparator), s.summaryMaxChars)

	prompt, err := render(s.summaryTemplate, summaryPromptData{Content: content})
	if err != nil {
		return nil, err
	}

	answer, err := s.invoke(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return &models.AnswerResult{Text: answer, Sources: []string{}}, nil
}

func (s *Synthesizer) invoke(ctx context.Context, prompt string) (string, error) {
	s.logger.Debug().
		Str("model", s.llmClient.ModelName()).
		Int("prompt_chars", len(prompt)).
		Msg("Invoking LLM")

	resp, err := s.llmClient.InvokeModel(ctx, llm.LLMRequest{
		Prompt:      prompt,
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
	})
	if err != nil {
		return "", err
	}

	event := s.logger.Debug()
	if resp.Truncated() {
		event = s.logger.Warn()
	}
	event.
		Str("stop_reason", resp.StopReason).
		Int("input_tokens", resp.Usage.InputTokens).
		Int("output_tokens", resp.Usage.OutputTokens).
		Msg("LLM completed")

	return strings.TrimSpace(resp.Content), nil
}

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render %s prompt: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}

// TruncateRunes returns the first n runes of s.
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
