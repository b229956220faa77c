package search

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/povarna/generative-ai-agents/web-rag-agent/internal/models"
)

var ErrDimensionMismatch = errors.New("embedding dimension mismatch")

// VectorIndex stores chunk embeddings and answers nearest-neighbour queries.
type VectorIndex interface {
	Add(entries ...models.IndexEntry) error
	Search(query []float32, k int) ([]models.ScoredChunk, error)
	Len() int
}

// MemoryIndex is a brute-force cosine index owned by a single request.
// It is not safe for concurrent writes.
type MemoryIndex struct {
	entries   []models.IndexEntry
	norms     []float64
	dimension int
}

var _ VectorIndex = (*MemoryIndex)(nil)

func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{}
}

func (m *MemoryIndex) Add(entries ...models.IndexEntry) error {
	for _, entry := range entries {
		if m.dimension == 0 {
			m.dimension = len(entry.Embedding)
		}
		if len(entry.Embedding) != m.dimension || m.dimension == 0 {
			return fmt.Errorf("%w: chunk %d has %d, index has %d",
				ErrDimensionMismatch, entry.Chunk.Index, len(entry.Embedding), m.dimension)
		}
		m.entries = append(m.entries, entry)
		m.norms = append(m.norms, norm(entry.Embedding))
	}
	return nil
}

// Search returns the k most similar chunks, best first. Equal scores are
// ordered by chunk index.
func (m *MemoryIndex) Search(query []float32, k int) ([]models.ScoredChunk, error) {
	if len(m.entries) == 0 || k <= 0 {
		return []models.ScoredChunk{}, nil
	}
	if len(query) != m.dimension {
		return nil, fmt.Errorf("%w: query has %d, index has %d", ErrDimensionMismatch, len(query), m.dimension)
	}

	queryNorm := norm(query)
	scored := make([]models.ScoredChunk, len(m.entries))
	for i, entry := range m.entries {
		scored[i] = models.ScoredChunk{
			Chunk: entry.Chunk,
			Score: cosine(query, entry.Embedding, queryNorm, m.norms[i]),
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Chunk.Index < scored[j].Chunk.Index
	})

	if k > len(scored) {
		k = len(scored)
	}
	return scored[:k], nil
}

func (m *MemoryIndex) Len() int {
	return len(m.entries)
}

func norm(v []float32) float64 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	return math.Sqrt(sum)
}

// cosine is 0 when either vector is all zeros.
func cosine(a, b []float32, normA, normB float64) float64 {
	if normA == 0 || normB == 0 {
		return 0
	}
	var dot float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
	}
	return dot / (normA * normB)
}
