package config

import (
	"errors"
	"fmt"
	"os"
	"text/template"
	"time"

	"gopkg.in/yaml.v3"
)

const DefaultPipelineConfigPath = "configs/pipeline.yaml"

// PipelineConfig holds the tunables of the retrieval pipeline.
type PipelineConfig struct {
	Chunking   ChunkingConfig   `yaml:"chunking"`
	Retrieval  RetrievalConfig  `yaml:"retrieval"`
	Discovery  DiscoveryConfig  `yaml:"discovery"`
	Loader     LoaderConfig     `yaml:"loader"`
	Generation GenerationConfig `yaml:"generation"`
	Prompts    PromptsConfig    `yaml:"prompts"`
}

type ChunkingConfig struct {
	Size    int `yaml:"size"`
	Overlap int `yaml:"overlap"`
}

type RetrievalConfig struct {
	TopK int `yaml:"top_k"`
}

// DiscoveryConfig bounds link expansion from seed pages.
type DiscoveryConfig struct {
	MaxLinksPerSeed int           `yaml:"max_links_per_seed"`
	SeedTimeout     time.Duration `yaml:"seed_timeout"`
}

type LoaderConfig struct {
	Timeout      time.Duration `yaml:"timeout"`
	Concurrency  int           `yaml:"concurrency"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
	UserAgent    string        `yaml:"user_agent"`
}

type GenerationConfig struct {
	Temperature     float64 `yaml:"temperature"`
	MaxTokens       int     `yaml:"max_tokens"`
	SummaryMaxChars int     `yaml:"summary_max_chars"`
}

// PromptsConfig carries text/template sources. The QA template receives
// .Context and .Question, the summary template receives .Content.
type PromptsConfig struct {
	QA      string `yaml:"qa"`
	Summary string `yaml:"summary"`
}

const DefaultQAPrompt = `Use the following pieces of context to answer the question at the end. If you don't know the answer, just say that you don't know, don't try to make up an answer.

{{.Context}}

Question: {{.Question}}
Helpful Answer:`

const DefaultSummaryPrompt = `You are a helpful AI assistant. Your task is to summarize the following content in a well-organized and detailed manner.

Please follow this structure:
1. Start with a **brief paragraph summary** explaining the overall topic.
2. Then provide a **detailed bullet-point breakdown** of key facts, data points, and takeaways.
3. If applicable, format structured data into a **Markdown-style table**, using proper syntax (no trailing pipes).
4. Keep the language formal and concise, suitable for readers who haven't seen the original article.
5. Maintain the order of importance and relevance as found in the content.

Here is the content to summarize:

{{.Content}}

Now generate the structured summary following the above format.`

// DefaultPipelineConfig returns the built-in pipeline settings.
func DefaultPipelineConfig() *PipelineConfig {
	return &PipelineConfig{
		Chunking: ChunkingConfig{
			Size:    500,
			Overlap: 100,
		},
		Retrieval: RetrievalConfig{
			TopK: 2,
		},
		Discovery: DiscoveryConfig{
			MaxLinksPerSeed: 5,
			SeedTimeout:     5 * time.Second,
		},
		Loader: LoaderConfig{
			Timeout:      15 * time.Second,
			Concurrency:  8,
			MaxBodyBytes: 10 << 20,
			UserAgent:    "web-rag-agent/1.0",
		},
		Generation: GenerationConfig{
			Temperature:     0.7,
			MaxTokens:       0,
			SummaryMaxChars: 10000,
		},
		Prompts: PromptsConfig{
			QA:      DefaultQAPrompt,
			Summary: DefaultSummaryPrompt,
		},
	}
}

// LoadPipelineConfig reads the YAML file named by PIPELINE_CONFIG_PATH (or the
// default path) on top of the built-in defaults. A missing file yields the
// defaults.
func LoadPipelineConfig() (*PipelineConfig, error) {
	path := os.Getenv("PIPELINE_CONFIG_PATH")
	if path == "" {
		path = DefaultPipelineConfigPath
	}
	return LoadPipelineConfigFrom(path)
}

func LoadPipelineConfigFrom(path string) (*PipelineConfig, error) {
	cfg := DefaultPipelineConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *PipelineConfig) Validate() error {
	if c.Chunking.Size <= 0 {
		return fmt.Errorf("invalid chunking size %d", c.Chunking.Size)
	}
	if c.Chunking.Overlap < 0 || c.Chunking.Overlap >= c.Chunking.Size {
		return fmt.Errorf("invalid chunking overlap %d (must be in [0, %d))", c.Chunking.Overlap, c.Chunking.Size)
	}
	if c.Retrieval.TopK <= 0 {
		return fmt.Errorf("invalid retrieval top_k %d", c.Retrieval.TopK)
	}
	if c.Discovery.MaxLinksPerSeed < 0 {
		return fmt.Errorf("negative max_links_per_seed %d", c.Discovery.MaxLinksPerSeed)
	}
	if c.Discovery.SeedTimeout <= 0 {
		return fmt.Errorf("invalid seed_timeout %s", c.Discovery.SeedTimeout)
	}
	if c.Loader.Timeout <= 0 {
		return fmt.Errorf("invalid loader timeout %s", c.Loader.Timeout)
	}
	if c.Loader.Concurrency <= 0 {
		return fmt.Errorf("invalid loader concurrency %d", c.Loader.Concurrency)
	}
	if c.Loader.MaxBodyBytes <= 0 {
		return fmt.Errorf("invalid loader max_body_bytes %d", c.Loader.MaxBodyBytes)
	}
	if c.Generation.Temperature < 0.0 || c.Generation.Temperature > 2.0 {
		return fmt.Errorf("invalid temperature %.2f", c.Generation.Temperature)
	}
	if c.Generation.MaxTokens < 0 {
		return fmt.Errorf("invalid max_tokens %d", c.Generation.MaxTokens)
	}
	if c.Generation.SummaryMaxChars <= 0 {
		return fmt.Errorf("invalid summary_max_chars %d", c.Generation.SummaryMaxChars)
	}
	if err := validatePrompt("qa", c.Prompts.QA); err != nil {
		return err
	}
	if err := validatePrompt("summary", c.Prompts.Summary); err != nil {
		return err
	}
	return nil
}

func validatePrompt(name, prompt string) error {
	if prompt == "" {
		return fmt.Errorf("missing prompt %q", name)
	}
	if _, err := template.New(name).Parse(prompt); err != nil {
		return fmt.Errorf("invalid prompt template %q: %w", name, err)
	}
	return nil
}
