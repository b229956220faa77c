package search

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/povarna/generative-ai-agents/web-rag-agent/internal/embedding"
	"github.com/povarna/generative-ai-agents/web-rag-agent/internal/models"
)

// CountingEmbedder wraps another embedder and records calls.
type CountingEmbedder struct {
	embedding.Embedder
	calls int
	err   error
}

func (c *CountingEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return c.Embedder.Embed(ctx, texts)
}

func chunk(index int, text, source string) models.Chunk {
	return models.Chunk{Text: text, Source: source, Index: index}
}

func TestMemoryIndex_SearchOrdering(t *testing.T) {
	index := NewMemoryIndex()
	err := index.Add(
		models.IndexEntry{Chunk: chunk(0, "zero", "a"), Embedding: []float32{0, 1}},
		models.IndexEntry{Chunk: chunk(1, "one", "a"), Embedding: []float32{1, 0}},
		models.IndexEntry{Chunk: chunk(2, "two", "b"), Embedding: []float32{2, 0}},
		models.IndexEntry{Chunk: chunk(3, "three", "b"), Embedding: []float32{1, 1}},
	)
	if err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	results, err := index.Search([]float32{1, 0}, 3)
	if err != nil {
		t.Fatalf("Search() failed: %v", err)
	}

	var got []int
	for _, r := range results {
		got = append(got, r.Chunk.Index)
	}
	// Chunks 1 and 2 tie at similarity 1 and keep index order
	if want := []int{1, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("Search() order = %v, want %v", got, want)
	}
	if results[0].Score != results[1].Score {
		t.Errorf("Expected tied scores, got %f and %f", results[0].Score, results[1].Score)
	}
}

func TestMemoryIndex_Edges(t *testing.T) {
	index := NewMemoryIndex()

	results, err := index.Search([]float32{1, 2, 3}, 2)
	if err != nil || len(results) != 0 {
		t.Errorf("Expected empty result from empty index, got %v, %v", results, err)
	}

	if err := index.Add(models.IndexEntry{Chunk: chunk(0, "a", "s"), Embedding: []float32{1, 0}}); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	err = index.Add(models.IndexEntry{Chunk: chunk(1, "b", "s"), Embedding: []float32{1, 0, 0}})
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("Expected ErrDimensionMismatch on add, got %v", err)
	}

	_, err = index.Search([]float32{1}, 1)
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("Expected ErrDimensionMismatch on search, got %v", err)
	}

	results, err = index.Search([]float32{0, 1}, 10)
	if err != nil || len(results) != 1 {
		t.Errorf("Expected k to be capped at index size, got %v, %v", results, err)
	}

	results, _ = index.Search([]float32{0, 0}, 1)
	if results[0].Score != 0 {
		t.Errorf("Expected zero score for zero query, got %f", results[0].Score)
	}
}

func TestRetriever_Deterministic(t *testing.T) {
	embedder := embedding.NewHashingEmbedder(384)
	retriever := NewRetriever(embedder, 2)

	chunks := []models.Chunk{
		chunk(0, "Go channels let goroutines communicate safely.", "https://go.test"),
		chunk(1, "Penguins are flightless birds of the southern hemisphere.", "https://birds.test"),
		chunk(2, "Goroutines communicate over channels in Go.", "https://go.test/rt"),
		chunk(3, "The Eiffel tower is in Paris.", "https://paris.test"),
	}

	var first []models.ScoredChunk
	for run := 0; run < 3; run++ {
		index, err := retriever.BuildIndex(context.Background(), chunks)
		if err != nil {
			t.Fatalf("BuildIndex() failed: %v", err)
		}
		results, err := retriever.Retrieve(context.Background(), index, "How do goroutines communicate with Go?")
		if err != nil {
			t.Fatalf("Retrieve() failed: %v", err)
		}
		if len(results) != 2 {
			t.Fatalf("Expected 2 results, got %d", len(results))
		}
		if run == 0 {
			first = results
			continue
		}
		if !reflect.DeepEqual(results, first) {
			t.Errorf("Run %d returned %v, first run returned %v", run, results, first)
		}
	}

	for _, r := range first {
		if r.Chunk.Index != 0 && r.Chunk.Index != 2 {
			t.Errorf("Expected Go chunks to rank first, got chunk %d", r.Chunk.Index)
		}
	}
}

func TestRetriever_EmptyIndexSkipsEmbedding(t *testing.T) {
	embedder := &CountingEmbedder{Embedder: embedding.NewHashingEmbedder(16)}
	retriever := NewRetriever(embedder, 2)

	index, err := retriever.BuildIndex(context.Background(), nil)
	if err != nil {
		t.Fatalf("BuildIndex() failed: %v", err)
	}

	results, err := retriever.Retrieve(context.Background(), index, "anything")
	if err != nil {
		t.Fatalf("Retrieve() failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Expected no results, got %d", len(results))
	}
	if embedder.calls != 0 {
		t.Errorf("Expected no embedder calls, got %d", embedder.calls)
	}
}

func TestRetriever_EmbedderFailure(t *testing.T) {
	providerErr := errors.New("rate limited")
	embedder := &CountingEmbedder{Embedder: embedding.NewHashingEmbedder(16), err: providerErr}
	retriever := NewRetriever(embedder, 2)

	_, err := retriever.BuildIndex(context.Background(), []models.Chunk{chunk(0, "text", "s")})
	if !errors.Is(err, providerErr) {
		t.Errorf("Expected provider error, got %v", err)
	}
}
