package embedding

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

// ModelInvoker is the slice of the Bedrock runtime API the embedder needs.
type ModelInvoker interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

type titanEmbeddingRequest struct {
	InputText  string `json:"inputText"`
	Dimensions int    `json:"dimensions,omitempty"`
	Normalize  bool   `json:"normalize"`
}

type titanEmbeddingResponse struct {
	Embedding           []float32 `json:"embedding"`
	InputTextTokenCount int       `json:"inputTextTokenCount"`
}

// BedrockEmbedder embeds texts with an Amazon Titan text embedding model.
type BedrockEmbedder struct {
	Client    ModelInvoker
	ModelID   string
	dimension int
}

var _ Embedder = (*BedrockEmbedder)(nil)

func NewBedrockEmbedder(ctx context.Context, region, modelID string, dimension int) (*BedrockEmbedder, error) {
	if modelID == "" {
		return nil, fmt.Errorf("embedding model ID is required")
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("Unable to load AWS config: %w", err)
	}

	return &BedrockEmbedder{
		Client:    bedrockruntime.NewFromConfig(cfg),
		ModelID:   modelID,
		dimension: dimension,
	}, nil
}

// Embed invokes the model once per text; Titan has no batch input.
func (e *BedrockEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	embeddings := make([][]float32, 0, len(texts))
	for i, text := range texts {
		vec, err := e.embedOne(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("failed to embed input %d: %w", i, err)
		}
		embeddings = append(embeddings, vec)
	}
	return embeddings, nil
}

func (e *BedrockEmbedder) embedOne(ctx context.Context, text string) ([]float32, error) {
	payload := titanEmbeddingRequest{
		InputText:  text,
		Dimensions: e.dimension,
		Normalize:  true,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("Unable to serialize titan request. Error: %w", err)
	}

	output, err := e.Client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(e.ModelID),
		Body:        body,
		Accept:      aws.String("application/json"),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return nil, fmt.Errorf("Unable to invoke titan model. Error: %w", err)
	}

	var response titanEmbeddingResponse
	if err := json.Unmarshal(output.Body, &response); err != nil {
		return nil, fmt.Errorf("Failed to unmarshal bedrock response. Error: %w", err)
	}
	if len(response.Embedding) == 0 {
		return nil, ErrEmptyEmbedding
	}

	return response.Embedding, nil
}

func (e *BedrockEmbedder) Dimension() int {
	return e.dimension
}

func (e *BedrockEmbedder) ModelName() string {
	return e.ModelID
}
