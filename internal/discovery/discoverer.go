package discovery

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/povarna/generative-ai-agents/web-rag-agent/internal/fetch"
	"github.com/rs/zerolog"
)

// Discoverer expands seed URLs with the links found on each seed page.
type Discoverer struct {
	fetcher         fetch.Fetcher
	maxLinksPerSeed int
	seedTimeout     time.Duration
	logger          *zerolog.Logger
}

func NewDiscoverer(fetcher fetch.Fetcher, maxLinksPerSeed int, seedTimeout time.Duration, logger *zerolog.Logger) *Discoverer {
	return &Discoverer{
		fetcher:         fetcher,
		maxLinksPerSeed: maxLinksPerSeed,
		seedTimeout:     seedTimeout,
		logger:          logger,
	}
}

// Expand fetches every seed in parallel and returns the seeds followed by up
// to maxLinksPerSeed discovered links per seed, deduplicated. A seed that
// cannot be fetched contributes no links but stays in the result.
func (d *Discoverer) Expand(ctx context.Context, seeds []string) []string {
	discovered := make([][]string, len(seeds))
	var wg sync.WaitGroup

	for i, seed := range seeds {
		wg.Add(1)
		go func(i int, seed string) {
			defer wg.Done()
			discovered[i] = d.linksFrom(ctx, seed)
		}(i, seed)
	}

	wg.Wait()

	all := make([]string, 0, len(seeds))
	all = append(all, seeds...)
	for _, links := range discovered {
		all = append(all, links...)
	}

	return Dedupe(all)
}

func (d *Discoverer) linksFrom(ctx context.Context, seed string) []string {
	ctx, cancel := context.WithTimeout(ctx, d.seedTimeout)
	defer cancel()

	base, err := url.Parse(seed)
	if err != nil {
		d.logger.Warn().Err(err).Str("url", seed).Msg("Skipping link discovery for unparsable seed")
		return nil
	}

	page, err := d.fetcher.Fetch(ctx, seed)
	if err != nil {
		d.logger.Warn().Err(err).Str("url", seed).Msg("Failed to fetch seed for link discovery")
		return nil
	}

	links := ExtractLinks(string(page.Body), base)
	if len(links) > d.maxLinksPerSeed {
		links = links[:d.maxLinksPerSeed]
	}

	d.logger.Debug().Str("url", seed).Int("links", len(links)).Msg("Links discovered")
	return links
}

// Dedupe drops repeated URLs, keeping the first occurrence.
func Dedupe(urls []string) []string {
	seen := make(map[string]struct{}, len(urls))
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}
