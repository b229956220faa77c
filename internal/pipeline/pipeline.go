package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/povarna/generative-ai-agents/web-rag-agent/internal/discovery"
	"github.com/povarna/generative-ai-agents/web-rag-agent/internal/ingestion"
	"github.com/povarna/generative-ai-agents/web-rag-agent/internal/models"
	"github.com/povarna/generative-ai-agents/web-rag-agent/internal/search"
	"github.com/rs/zerolog"
)

// LinkExpander adds links discovered on seed pages to the seed list
type LinkExpander interface {
	Expand(ctx context.Context, seeds []string) []string
}

// DocumentLoader fetches URLs and extracts their text
type DocumentLoader interface {
	Load(ctx context.Context, urls []string) ([]models.Document, error)
}

// Retriever builds the per-request index and queries it
type Retriever interface {
	BuildIndex(ctx context.Context, chunks []models.Chunk) (search.VectorIndex, error)
	Retrieve(ctx context.Context, index search.VectorIndex, query string) ([]models.ScoredChunk, error)
}

// Synthesizer produces the final text with the LLM
type Synthesizer interface {
	Answer(ctx context.Context, query string, retrieved []models.ScoredChunk) (*models.AnswerResult, error)
	Summarize(ctx context.Context, chunks []models.Chunk) (*models.AnswerResult, error)
}

// publishTimeout bounds a background publish once the response is gone.
const publishTimeout = 5 * time.Second

// InteractionPublisher ships answered requests to the evaluation stream
type InteractionPublisher interface {
	Publish(ctx context.Context, interaction models.Interaction) error
}

type Pipeline struct {
	expander       LinkExpander
	loader         DocumentLoader
	chunker        *ingestion.Chunker
	retriever      Retriever
	synthesizer    Synthesizer
	publisher      InteractionPublisher
	requestTimeout time.Duration
	logger         *zerolog.Logger

	publishes sync.WaitGroup
}

// NewPipeline wires the stages. publisher may be nil and requestTimeout may
// be zero to disable the end-to-end deadline.
func NewPipeline(
	expander LinkExpander,
	loader DocumentLoader,
	chunker *ingestion.Chunker,
	retriever Retriever,
	synthesizer Synthesizer,
	publisher InteractionPublisher,
	requestTimeout time.Duration,
	logger *zerolog.Logger,
) *Pipeline {
	return &Pipeline{
		expander:       expander,
		loader:         loader,
		chunker:        chunker,
		retriever:      retriever,
		synthesizer:    synthesizer,
		publisher:      publisher,
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}

// Query answers a question over the given pages and the links found on them.
func (p *Pipeline) Query(ctx context.Context, req models.QueryRequest) (*models.AnswerResult, error) {
	seeds := cleanURLs(req.URLs)
	query := strings.TrimSpace(req.Query)
	if len(seeds) == 0 || query == "" {
		return nil, &ValidationError{Message: MsgMissingURLsOrQuery}
	}

	requestID := ensureRequestID(req.RequestID)
	logger := p.logger.With().Str("requestID", requestID).Str("mode", string(models.ModeQuery)).Logger()

	ctx, cancel := p.withDeadline(ctx)
	defer cancel()

	logStage(&logger, StageReceived).Int("seeds", len(seeds)).Msg("Request received")

	urls := p.expander.Expand(ctx, seeds)
	logStage(&logger, StageLinksExpanded).Int("urls", len(urls)).Msg("Links expanded")

	docs, err := p.loader.Load(ctx, urls)
	if err != nil {
		return nil, p.fail(&logger, StageLoaded, timeoutOr(ctx, fmt.Errorf("failed to load documents: %w", err)))
	}
	logStage(&logger, StageLoaded).Int("documents", len(docs)).Msg("Documents loaded")

	chunks := p.chunker.ChunkDocuments(docs)
	logStage(&logger, StageChunked).Int("chunks", len(chunks)).Msg("Documents chunked")

	index, err := p.retriever.BuildIndex(ctx, chunks)
	if err != nil {
		return nil, p.fail(&logger, StageIndexed, timeoutOr(ctx, &UpstreamError{Provider: "embedding", Err: err}))
	}
	logStage(&logger, StageIndexed).Int("entries", index.Len()).Msg("Index built")

	retrieved, err := p.retriever.Retrieve(ctx, index, query)
	if err != nil {
		return nil, p.fail(&logger, StageRetrieved, timeoutOr(ctx, &UpstreamError{Provider: "embedding", Err: err}))
	}
	logStage(&logger, StageRetrieved).Int("hits", len(retrieved)).Msg("Passages retrieved")

	result, err := p.synthesizer.Answer(ctx, query, retrieved)
	if err != nil {
		return nil, p.fail(&logger, StageSynthesized, timeoutOr(ctx, &UpstreamError{Provider: "llm", Err: err}))
	}
	logStage(&logger, StageSynthesized).Int("sources", len(result.Sources)).Msg("Answer synthesized")

	contextTexts := make([]string, len(retrieved))
	for i, r := range retrieved {
		contextTexts[i] = r.Chunk.Text
	}
	p.publish(ctx, &logger, models.Interaction{
		RequestID: requestID,
		Mode:      models.ModeQuery,
		Query:     query,
		Context:   strings.Join(contextTexts, "\n\n"),
		Answer:    result.Text,
		Sources:   result.Sources,
	})

	logStage(&logger, StageResponded).Msg("Request completed")
	return result, nil
}

// Summarize produces a structured summary of the given pages. No link
// discovery takes place.
func (p *Pipeline) Summarize(ctx context.Context, req models.SummaryRequest) (*models.AnswerResult, error) {
	urls := cleanURLs(req.URLs)
	if len(urls) == 0 {
		return nil, &ValidationError{Message: MsgMissingURLs}
	}

	requestID := ensureRequestID(req.RequestID)
	logger := p.logger.With().Str("requestID", requestID).Str("mode", string(models.ModeSummary)).Logger()

	ctx, cancel := p.withDeadline(ctx)
	defer cancel()

	logStage(&logger, StageReceived).Int("urls", len(urls)).Msg("Request received")

	docs, err := p.loader.Load(ctx, urls)
	if err != nil {
		return nil, p.fail(&logger, StageLoaded, timeoutOr(ctx, fmt.Errorf("failed to load documents: %w", err)))
	}
	if len(docs) == 0 {
		return nil, p.fail(&logger, StageLoaded, ErrEmptyContent)
	}
	logStage(&logger, StageLoaded).Int("documents", len(docs)).Msg("Documents loaded")

	chunks := p.chunker.ChunkDocuments(docs)
	logStage(&logger, StageChunked).Int("chunks", len(chunks)).Msg("Documents chunked")

	result, err := p.synthesizer.Summarize(ctx, chunks)
	if err != nil {
		return nil, p.fail(&logger, StageSynthesized, timeoutOr(ctx, &UpstreamError{Provider: "llm", Err: err}))
	}
	logStage(&logger, StageSynthesized).Msg("Summary synthesized")

	p.publish(ctx, &logger, models.Interaction{
		RequestID: requestID,
		Mode:      models.ModeSummary,
		Answer:    result.Text,
		Sources:   urls,
	})

	logStage(&logger, StageResponded).Msg("Request completed")
	return result, nil
}

func (p *Pipeline) withDeadline(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.requestTimeout > 0 {
		return context.WithTimeout(ctx, p.requestTimeout)
	}
	return context.WithCancel(ctx)
}

// publish hands the interaction to the publisher without holding up the
// response. The request context is detached so the publish outlives it.
func (p *Pipeline) publish(ctx context.Context, logger *zerolog.Logger, interaction models.Interaction) {
	if p.publisher == nil {
		return
	}

	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	publishLogger := *logger

	p.publishes.Add(1)
	go func() {
		defer p.publishes.Done()
		defer cancel()

		if err := p.publisher.Publish(publishCtx, interaction); err != nil {
			publishLogger.Warn().Err(err).Msg("Failed to publish interaction")
		}
	}()
}

// Wait blocks until background publishes have finished.
func (p *Pipeline) Wait() {
	p.publishes.Wait()
}

func (p *Pipeline) fail(logger *zerolog.Logger, stage Stage, err error) error {
	logger.Error().Err(err).Str("stage", string(stage)).Msg("Request failed")
	return err
}

// timeoutOr reports ErrTimeout when the request deadline expired.
func timeoutOr(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return err
}

func cleanURLs(urls []string) []string {
	cleaned := make([]string, 0, len(urls))
	for _, u := range urls {
		if u = strings.TrimSpace(u); u != "" {
			cleaned = append(cleaned, u)
		}
	}
	return discovery.Dedupe(cleaned)
}

func ensureRequestID(id string) string {
	if id == "" {
		return uuid.New().String()
	}
	return id
}
