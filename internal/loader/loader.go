package loader

import (
	"context"
	"fmt"
	"time"

	"github.com/povarna/generative-ai-agents/web-rag-agent/internal/fetch"
	"github.com/povarna/generative-ai-agents/web-rag-agent/internal/models"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Loader turns URLs into documents. URLs that fail or carry no text are
// left out of the result.
type Loader interface {
	Load(ctx context.Context, urls []string) ([]models.Document, error)
}

type WebLoader struct {
	fetcher     fetch.Fetcher
	timeout     time.Duration
	concurrency int
	logger      *zerolog.Logger
}

var _ Loader = (*WebLoader)(nil)

func NewWebLoader(fetcher fetch.Fetcher, timeout time.Duration, concurrency int, logger *zerolog.Logger) *WebLoader {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &WebLoader{
		fetcher:     fetcher,
		timeout:     timeout,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Load fetches the URLs with bounded parallelism and returns documents in
// input order. Only cancellation of ctx is reported as an error.
func (l *WebLoader) Load(ctx context.Context, urls []string) ([]models.Document, error) {
	slots := make([]*models.Document, len(urls))

	var g errgroup.Group
	g.SetLimit(l.concurrency)
	for i, u := range urls {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			slots[i] = l.loadOne(ctx, u)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("loading aborted: %w", err)
	}

	docs := []models.Document{}
	for _, doc := range slots {
		if doc != nil {
			docs = append(docs, *doc)
		}
	}

	return docs, nil
}

func (l *WebLoader) loadOne(ctx context.Context, url string) *models.Document {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	page, err := l.fetcher.Fetch(ctx, url)
	if err != nil {
		l.logger.Warn().Err(err).Str("url", url).Msg("Failed to load URL")
		return nil
	}

	title, text, err := extractText(page.ContentType, page.Body)
	if err != nil {
		l.logger.Warn().Err(err).Str("url", url).Msg("Failed to extract text")
		return nil
	}
	if text == "" {
		l.logger.Warn().Str("url", url).Msg("No text extracted")
		return nil
	}

	l.logger.Debug().
		Str("url", url).
		Str("content_type", page.ContentType).
		Int("chars", len(text)).
		Msg("Document loaded")

	return &models.Document{
		Text:        text,
		Source:      url,
		Title:       title,
		ContentType: mediaTypeOf(page.ContentType, page.Body),
	}
}
