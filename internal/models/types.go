package models

// Mode selects how a request is answered.
type Mode string

const (
	ModeQuery   Mode = "query"
	ModeSummary Mode = "summary"
)

// Document is the extracted text of one fetched URL.
type Document struct {
	Text        string
	Source      string
	Title       string
	ContentType string
}

// Chunk is a bounded passage of a Document.
// Start is the rune offset of Text inside the parent Document.
type Chunk struct {
	Text   string
	Source string
	Index  int
	Start  int
}

// IndexEntry pairs a chunk with its embedding.
type IndexEntry struct {
	Chunk     Chunk
	Embedding []float32
}

// ScoredChunk is one retrieval hit
type ScoredChunk struct {
	Chunk Chunk
	Score float64
}

// AnswerResult is the synthesizer output. Sources keep retrieval order and
// may contain duplicates.
type AnswerResult struct {
	Text    string
	Sources []string
}

// QueryRequest is the pipeline input for question answering.
type QueryRequest struct {
	RequestID string
	URLs      []string
	Query     string
}

// SummaryRequest is the pipeline input for summarization.
type SummaryRequest struct {
	RequestID string
	URLs      []string
}

// Interaction is one answered request, published for offline evaluation.
type Interaction struct {
	RequestID string
	Mode      Mode
	Query     string
	Context   string
	Answer    string
	Sources   []string
}
