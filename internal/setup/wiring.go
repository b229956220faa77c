package setup

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/povarna/generative-ai-agents/web-rag-agent/internal/config"
	"github.com/povarna/generative-ai-agents/web-rag-agent/internal/discovery"
	"github.com/povarna/generative-ai-agents/web-rag-agent/internal/embedding"
	"github.com/povarna/generative-ai-agents/web-rag-agent/internal/fetch"
	"github.com/povarna/generative-ai-agents/web-rag-agent/internal/ingestion"
	"github.com/povarna/generative-ai-agents/web-rag-agent/internal/llm"
	"github.com/povarna/generative-ai-agents/web-rag-agent/internal/llm/bedrock"
	"github.com/povarna/generative-ai-agents/web-rag-agent/internal/llm/gpt"
	"github.com/povarna/generative-ai-agents/web-rag-agent/internal/loader"
	"github.com/povarna/generative-ai-agents/web-rag-agent/internal/pipeline"
	redisconn "github.com/povarna/generative-ai-agents/web-rag-agent/internal/redis"
	"github.com/povarna/generative-ai-agents/web-rag-agent/internal/search"
	"github.com/povarna/generative-ai-agents/web-rag-agent/internal/stream"
	streamredis "github.com/povarna/generative-ai-agents/web-rag-agent/internal/stream/redis"
	"github.com/povarna/generative-ai-agents/web-rag-agent/internal/synthesis"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	AgentName    = "web-rag-agent"
	AgentVersion = "1.0.0"

	redisMaxAttempts = 5
)

type Dependencies struct {
	Pipeline       *pipeline.Pipeline
	PipelineConfig *config.PipelineConfig
	Logger         *zerolog.Logger

	redisClient *redis.Client
}

// Close waits for in-flight publishes and releases connections opened by Wire.
func (d *Dependencies) Close() error {
	if d.Pipeline != nil {
		d.Pipeline.Wait()
	}
	if d.redisClient != nil {
		return d.redisClient.Close()
	}
	return nil
}

// Wire validates cfg and assembles the pipeline. Missing provider
// credentials surface as *StartupConfigError.
func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pipelineCfg, err := config.LoadPipelineConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load pipeline config: %w", err)
	}

	llmClient, err := createLLMClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	embedder, err := createEmbedder(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedder: %w", err)
	}

	logger.Info().
		Str("llm_provider", cfg.LLMProvider).
		Str("llm_model", llmClient.ModelName()).
		Str("embedding_provider", cfg.EmbeddingProvider).
		Str("embedding_model", embedder.ModelName()).
		Msg("Providers initialized")

	synthesizer, err := synthesis.NewSynthesizer(llmClient, pipelineCfg.Generation, pipelineCfg.Prompts, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create synthesizer: %w", err)
	}

	fetcher := fetch.NewHTTPFetcher(newHTTPClient(), pipelineCfg.Loader.UserAgent, pipelineCfg.Loader.MaxBodyBytes)
	expander := discovery.NewDiscoverer(fetcher, pipelineCfg.Discovery.MaxLinksPerSeed, pipelineCfg.Discovery.SeedTimeout, logger)
	webLoader := loader.NewWebLoader(fetcher, pipelineCfg.Loader.Timeout, pipelineCfg.Loader.Concurrency, logger)
	chunker := ingestion.NewChunker(pipelineCfg.Chunking.Size, pipelineCfg.Chunking.Overlap)
	retriever := search.NewRetriever(embedder, pipelineCfg.Retrieval.TopK)

	deps := &Dependencies{
		PipelineConfig: pipelineCfg,
		Logger:         logger,
	}

	var publisher pipeline.InteractionPublisher
	if cfg.RedisAddr != "" {
		client, err := redisconn.Connect(ctx, redisconn.Options{
			Addr:        cfg.RedisAddr,
			Password:    cfg.RedisPassword,
			MaxAttempts: redisMaxAttempts,
		}, logger)
		if err != nil {
			logger.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("Evaluation stream disabled")
		} else {
			deps.redisClient = client
			publisher = streamredis.NewPublisher(client, cfg.EvalStream, stream.Agent{
				Name:    AgentName,
				Type:    "rag",
				Version: AgentVersion,
			}, logger)
			logger.Info().Str("stream", cfg.EvalStream).Msg("Publishing interactions to evaluation stream")
		}
	}

	deps.Pipeline = pipeline.NewPipeline(
		expander,
		webLoader,
		chunker,
		retriever,
		synthesizer,
		publisher,
		cfg.RequestTimeout,
		logger,
	)

	return deps, nil
}

func createLLMClient(ctx context.Context, cfg *Config) (llm.LLMClient, error) {
	switch cfg.LLMProvider {
	case ProviderBedrock:
		return bedrock.NewClient(ctx, cfg.AWSRegion, cfg.ClaudeModelID)
	case ProviderOpenAI:
		return gpt.NewClient(cfg.OpenAIKey, cfg.OpenAIModelID, cfg.OpenAIBaseURL)
	default:
		return gpt.NewClient(cfg.GroqAPIKey, cfg.GroqModelID, gpt.GroqBaseURL)
	}
}

func createEmbedder(ctx context.Context, cfg *Config) (embedding.Embedder, error) {
	switch cfg.EmbeddingProvider {
	case ProviderLocal:
		return embedding.NewSentenceEmbedder(cfg.EmbeddingAPIKey, cfg.EmbeddingModelID, cfg.EmbeddingBaseURL, cfg.EmbeddingDimension)
	case ProviderOpenAI:
		model := cfg.EmbeddingModelID
		if model == "" {
			model = "text-embedding-3-small"
		}
		baseURL := cfg.EmbeddingBaseURL
		if baseURL == "" {
			baseURL = cfg.OpenAIBaseURL
		}
		return embedding.NewOpenAIEmbedder(cfg.embeddingAPIKey(), model, baseURL, cfg.EmbeddingDimension)
	case ProviderBedrock:
		model := cfg.EmbeddingModelID
		if model == "" {
			model = "amazon.titan-embed-text-v2:0"
		}
		return embedding.NewBedrockEmbedder(ctx, cfg.AWSRegion, model, cfg.EmbeddingDimension)
	case ProviderHashing:
		return embedding.NewHashingEmbedder(cfg.EmbeddingDimension), nil
	default:
		return nil, fmt.Errorf("unknown embedding provider %q", cfg.EmbeddingProvider)
	}
}

func newHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}
