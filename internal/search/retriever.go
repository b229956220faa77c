package search

import (
	"context"
	"fmt"

	"github.com/povarna/generative-ai-agents/web-rag-agent/internal/embedding"
	"github.com/povarna/generative-ai-agents/web-rag-agent/internal/models"
)

type Retriever struct {
	embedder embedding.Embedder
	topK     int
}

func NewRetriever(embedder embedding.Embedder, topK int) *Retriever {
	return &Retriever{
		embedder: embedder,
		topK:     topK,
	}
}

// BuildIndex embeds every chunk and returns a fresh in-memory index.
func (r *Retriever) BuildIndex(ctx context.Context, chunks []models.Chunk) (VectorIndex, error) {
	index := NewMemoryIndex()
	if len(chunks) == 0 {
		return index, nil
	}

	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Text
	}

	embeddings, err := r.embedder.Embed(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("Unable to generate embeddings. Error: %w", err)
	}
	if len(embeddings) != len(chunks) {
		return nil, fmt.Errorf("embedder returned %d vectors for %d chunks", len(embeddings), len(chunks))
	}

	for i, chunk := range chunks {
		if err := index.Add(models.IndexEntry{Chunk: chunk, Embedding: embeddings[i]}); err != nil {
			return nil, err
		}
	}

	return index, nil
}

// Retrieve returns the top-K chunks for query. An empty index short-circuits
// without embedding the query.
func (r *Retriever) Retrieve(ctx context.Context, index VectorIndex, query string) ([]models.ScoredChunk, error) {
	if index.Len() == 0 {
		return []models.ScoredChunk{}, nil
	}

	embeddings, err := r.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("Unable to embed query. Error: %w", err)
	}
	if len(embeddings) != 1 {
		return nil, fmt.Errorf("%w for query", embedding.ErrEmptyEmbedding)
	}

	results, err := index.Search(embeddings[0], r.topK)
	if err != nil {
		return nil, fmt.Errorf("Unable to search index. Error: %w", err)
	}

	return results, nil
}
