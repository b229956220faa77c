package embedding

import (
	"context"
	"errors"
)

var (
	ErrEmptyEmbedding    = errors.New("provider returned no embedding")
	ErrDimensionMismatch = errors.New("unexpected embedding dimension")
)

// Embedder turns texts into fixed-size vectors, one per input, in input order.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	Dimension() int
	ModelName() string
}
