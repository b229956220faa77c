package synthesis

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/povarna/generative-ai-agents/web-rag-agent/internal/config"
	"github.com/povarna/generative-ai-agents/web-rag-agent/internal/llm"
	"github.com/povarna/generative-ai-agents/web-rag-agent/internal/models"
	"github.com/rs/zerolog"
)

type MockLLMClient struct {
	ResponseToReturn *llm.LLMResponse
	ErrorToReturn    error

	WasCalled   bool
	LastRequest *llm.LLMRequest
}

func (m *MockLLMClient) InvokeModel(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	m.WasCalled = true
	m.LastRequest = &request
	if m.ErrorToReturn != nil {
		return nil, m.ErrorToReturn
	}
	return m.ResponseToReturn, nil
}

func (m *MockLLMClient) ModelName() string {
	return "mock-model"
}

func newSynthesizer(t *testing.T, client llm.LLMClient) *Synthesizer {
	t.Helper()
	logger := zerolog.Nop()
	cfg := config.DefaultPipelineConfig()

	s, err := NewSynthesizer(client, cfg.Generation, cfg.Prompts, &logger)
	if err != nil {
		t.Fatalf("NewSynthesizer() failed: %v", err)
	}
	return s
}

func scored(index int, text, source string) models.ScoredChunk {
	return models.ScoredChunk{Chunk: models.Chunk{Text: text, Source: source, Index: index}, Score: 0.5}
}

func TestAnswer_StuffsContext(t *testing.T) {
	mock := &MockLLMClient{ResponseToReturn: &llm.LLMResponse{Content: "  Paris.  ", StopReason: "stop"}}
	s := newSynthesizer(t, mock)

	result, err := s.Answer(context.Background(), "What is the capital?", []models.ScoredChunk{
		scored(3, "France's capital is Paris.", "https://a.test"),
		scored(1, "Paris hosts the Louvre.", "https://a.test"),
	})
	if err != nil {
		t.Fatalf("Answer() failed: %v", err)
	}

	if result.Text != "Paris." {
		t.Errorf("Expected trimmed answer, got %q", result.Text)
	}
	if want := []string{"https://a.test", "https://a.test"}; !reflect.DeepEqual(result.Sources, want) {
		t.Errorf("Sources = %v, want %v", result.Sources, want)
	}

	prompt := mock.LastRequest.Prompt
	if !strings.Contains(prompt, "France's capital is Paris.\n\nParis hosts the Louvre.") {
		t.Errorf("Expected passages joined in retrieval order, got prompt:\n%s", prompt)
	}
	if !strings.HasSuffix(prompt, "Question: What is the capital?\nHelpful Answer:") {
		t.Errorf("Expected question at the end, got prompt:\n%s", prompt)
	}
	if mock.LastRequest.Temperature != 0.7 {
		t.Errorf("Expected temperature 0.7, got %f", mock.LastRequest.Temperature)
	}
}

func TestAnswer_NoPassagesStillAsks(t *testing.T) {
	mock := &MockLLMClient{ResponseToReturn: &llm.LLMResponse{Content: "I don't know."}}
	s := newSynthesizer(t, mock)

	result, err := s.Answer(context.Background(), "Anything?", nil)
	if err != nil {
		t.Fatalf("Answer() failed: %v", err)
	}
	if !mock.WasCalled {
		t.Error("Expected the LLM to be invoked with empty context")
	}
	if result.Sources == nil || len(result.Sources) != 0 {
		t.Errorf("Expected empty non-nil sources, got %v", result.Sources)
	}
}

func TestAnswer_ProviderError(t *testing.T) {
	providerErr := errors.New("rate limit exceeded")
	s := newSynthesizer(t, &MockLLMClient{ErrorToReturn: providerErr})

	_, err := s.Answer(context.Background(), "q", []models.ScoredChunk{scored(0, "t", "s")})
	if !errors.Is(err, providerErr) {
		t.Errorf("Expected provider error, got %v", err)
	}
}

func TestSummarize_TruncatesContent(t *testing.T) {
	mock := &MockLLMClient{ResponseToReturn: &llm.LLMResponse{Content: "Summary"}}
	s := newSynthesizer(t, mock)

	// 6000 + 2 + 6000 runes, the cut lands inside the second chunk
	chunks := []models.Chunk{
		{Text: strings.Repeat("a", 6000), Source: "s", Index: 0},
		{Text: strings.Repeat("é", 6000), Source: "s", Index: 1},
	}

	result, err := s.Summarize(context.Background(), chunks)
	if err != nil {
		t.Fatalf("Summarize() failed: %v", err)
	}
	if result.Text != "Summary" || len(result.Sources) != 0 {
		t.Errorf("Unexpected result: %+v", result)
	}

	prompt := mock.LastRequest.Prompt
	start := strings.Index(prompt, "Here is the content to summarize:\n\n") + len("Here is the content to summarize:\n\n")
	end := strings.Index(prompt, "\n\nNow generate the structured summary")
	content := prompt[start:end]

	if got := utf8.RuneCountInString(content); got != 10000 {
		t.Errorf("Expected exactly 10000 runes of content, got %d", got)
	}
	want := strings.Repeat("a", 6000) + "\n\n" + strings.Repeat("é", 3998)
	if content != want {
		t.Error("Content is not the first 10000 runes of the joined passages")
	}
	if !strings.Contains(prompt, "no trailing pipes") {
		t.Error("Expected the structured summary instructions in the prompt")
	}
}

func TestSummarize_ShortContentUntouched(t *testing.T) {
	mock := &MockLLMClient{ResponseToReturn: &llm.LLMResponse{Content: "ok"}}
	s := newSynthesizer(t, mock)

	_, err := s.Summarize(context.Background(), []models.Chunk{{Text: "one"}, {Text: "two"}})
	if err != nil {
		t.Fatalf("Summarize() failed: %v", err)
	}
	if !strings.Contains(mock.LastRequest.Prompt, "one\n\ntwo") {
		t.Errorf("Expected joined passages, got:\n%s", mock.LastRequest.Prompt)
	}
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello", 3, "hel"},
		{"héllo", 2, "hé"},
		{"abc", 0, ""},
		{"", 4, ""},
	}

	for _, tt := range tests {
		if got := TruncateRunes(tt.in, tt.n); got != tt.want {
			t.Errorf("TruncateRunes(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestNewSynthesizer_InvalidTemplate(t *testing.T) {
	logger := zerolog.Nop()
	cfg := config.DefaultPipelineConfig()
	cfg.Prompts.QA = "{{.Context"

	if _, err := NewSynthesizer(&MockLLMClient{}, cfg.Generation, cfg.Prompts, &logger); err == nil {
		t.Error("Expected error for invalid template")
	}
}
