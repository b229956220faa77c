package embedding

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const maxBatch = 100

const (
	DefaultSentenceModel     = "sentence-transformers/all-MiniLM-L6-v2"
	DefaultSentenceDimension = 384
	DefaultSentenceBaseURL   = "http://localhost:8080/v1"

	// Self-hosted embedding servers ignore the key, the client still sends one.
	sentenceAPIKey = "unused"
)

// OpenAIEmbedder calls an OpenAI-compatible /embeddings endpoint.
type OpenAIEmbedder struct {
	Client    openai.Client
	ModelID   string
	dimension int

	// sendDimensions asks the server to shorten vectors. Only OpenAI's own
	// text-embedding-3 models accept the parameter.
	sendDimensions bool
}

var _ Embedder = (*OpenAIEmbedder)(nil)

func NewOpenAIEmbedder(apiKey, model, baseURL string, dimension int) (*OpenAIEmbedder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("embedding API key is required")
	}
	if model == "" {
		return nil, fmt.Errorf("embedding model ID is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &OpenAIEmbedder{
		Client:         openai.NewClient(opts...),
		ModelID:        model,
		dimension:      dimension,
		sendDimensions: dimension > 0,
	}, nil
}

// NewSentenceEmbedder talks to a self-hosted sentence-transformers model
// served behind the OpenAI embeddings API (text-embeddings-inference,
// Ollama, vLLM). The vector size is fixed by the model, so dimension is only
// reported and never sent.
func NewSentenceEmbedder(apiKey, model, baseURL string, dimension int) (*OpenAIEmbedder, error) {
	if apiKey == "" {
		apiKey = sentenceAPIKey
	}
	if model == "" {
		model = DefaultSentenceModel
	}
	if baseURL == "" {
		baseURL = DefaultSentenceBaseURL
	}
	if dimension <= 0 {
		dimension = DefaultSentenceDimension
	}

	e, err := NewOpenAIEmbedder(apiKey, model, baseURL, dimension)
	if err != nil {
		return nil, err
	}
	e.sendDimensions = false
	return e, nil
}

func (e *OpenAIEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	allEmbeddings := make([][]float32, 0, len(texts))
	for i := 0; i < len(texts); i += maxBatch {
		end := min(i+maxBatch, len(texts))

		embeddings, err := e.embedBatch(ctx, texts[i:end])
		if err != nil {
			return nil, err
		}
		allEmbeddings = append(allEmbeddings, embeddings...)
	}

	return allEmbeddings, nil
}

func (e *OpenAIEmbedder) embedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	params := openai.EmbeddingNewParams{
		Input: openai.EmbeddingNewParamsInputUnion{
			OfArrayOfStrings: texts,
		},
		Model: openai.EmbeddingModel(e.ModelID),
	}
	if e.sendDimensions {
		params.Dimensions = openai.Int(int64(e.dimension))
	}

	output, err := e.Client.Embeddings.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("unable to generate embeddings. Error: %w", err)
	}

	embeddings := make([][]float32, len(texts))
	for _, data := range output.Data {
		if data.Index < 0 || int(data.Index) >= len(embeddings) {
			continue
		}
		if e.dimension > 0 && len(data.Embedding) != e.dimension {
			return nil, fmt.Errorf("%w: model %s returned %d values, expected %d",
				ErrDimensionMismatch, e.ModelID, len(data.Embedding), e.dimension)
		}
		vec := make([]float32, len(data.Embedding))
		for j, v := range data.Embedding {
			vec[j] = float32(v)
		}
		embeddings[data.Index] = vec
	}

	for i, vec := range embeddings {
		if len(vec) == 0 {
			return nil, fmt.Errorf("%w for input %d", ErrEmptyEmbedding, i)
		}
	}

	return embeddings, nil
}

func (e *OpenAIEmbedder) Dimension() int {
	return e.dimension
}

func (e *OpenAIEmbedder) ModelName() string {
	return e.ModelID
}
