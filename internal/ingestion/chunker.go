package ingestion

import (
	"github.com/povarna/generative-ai-agents/web-rag-agent/internal/models"
)

// Boundaries tried in order when looking for a split point.
var separators = [][]rune{
	[]rune("\n\n"),
	[]rune("\n"),
	[]rune(". "),
	[]rune("! "),
	[]rune("? "),
	[]rune(" "),
}

type Chunker struct {
	ChunkSize    int
	ChunkOverlap int
}

func NewChunker(chunkSize, overlap int) *Chunker {
	return &Chunker{
		ChunkSize:    chunkSize,
		ChunkOverlap: overlap,
	}
}

// ChunkDocuments splits every document and numbers the chunks globally in
// document order.
func (c *Chunker) ChunkDocuments(docs []models.Document) []models.Chunk {
	results := []models.Chunk{}
	for _, doc := range docs {
		results = append(results, c.ChunkDocument(doc, len(results))...)
	}
	return results
}

// ChunkDocument splits one document. Consecutive chunks share exactly
// ChunkOverlap runes, so chunk 0 followed by every later chunk minus its
// first ChunkOverlap runes rebuilds the text.
func (c *Chunker) ChunkDocument(doc models.Document, firstIndex int) []models.Chunk {
	// Validate chunk size and overlap
	if c.ChunkSize <= 0 || c.ChunkOverlap < 0 || c.ChunkOverlap >= c.ChunkSize {
		return []models.Chunk{}
	}

	runes := []rune(doc.Text)
	n := len(runes)
	results := []models.Chunk{}
	if n == 0 {
		return results
	}

	pos := 0
	chunkIndex := firstIndex
	for {
		end := min(pos+c.ChunkSize, n)
		if end == n {
			results = append(results, models.Chunk{
				Text:   string(runes[pos:n]),
				Source: doc.Source,
				Index:  chunkIndex,
				Start:  pos,
			})
			break
		}

		split := findSplit(runes, pos+c.ChunkOverlap, end)
		results = append(results, models.Chunk{
			Text:   string(runes[pos:split]),
			Source: doc.Source,
			Index:  chunkIndex,
			Start:  pos,
		})
		chunkIndex++

		pos = split - c.ChunkOverlap
	}

	return results
}

// findSplit returns the position right after the last occurrence of the
// highest priority separator ending inside (lo, hi], or hi if none does.
func findSplit(runes []rune, lo, hi int) int {
	for _, sep := range separators {
		for i := hi - len(sep); i >= 0 && i+len(sep) > lo; i-- {
			if hasPrefixAt(runes, i, sep) {
				return i + len(sep)
			}
		}
	}
	return hi
}

func hasPrefixAt(runes []rune, at int, sep []rune) bool {
	if at+len(sep) > len(runes) {
		return false
	}
	for j, r := range sep {
		if runes[at+j] != r {
			return false
		}
	}
	return true
}
