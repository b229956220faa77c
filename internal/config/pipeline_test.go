package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestLoadPipelineConfig_Success(t *testing.T) {
	path := writeConfig(t, `chunking:
  size: 800
  overlap: 150
retrieval:
  top_k: 4
discovery:
  max_links_per_seed: 3
  seed_timeout: 2s
generation:
  temperature: 0.2
prompts:
  qa: |
    Context: {{.Context}}
    Q: {{.Question}}
`)
	t.Setenv("PIPELINE_CONFIG_PATH", path)

	cfg, err := LoadPipelineConfig()
	if err != nil {
		t.Fatalf("LoadPipelineConfig() failed: %v", err)
	}

	if cfg.Chunking.Size != 800 || cfg.Chunking.Overlap != 150 {
		t.Errorf("Expected chunking 800/150, got %d/%d", cfg.Chunking.Size, cfg.Chunking.Overlap)
	}
	if cfg.Retrieval.TopK != 4 {
		t.Errorf("Expected top_k=4, got %d", cfg.Retrieval.TopK)
	}
	if cfg.Discovery.MaxLinksPerSeed != 3 {
		t.Errorf("Expected max_links_per_seed=3, got %d", cfg.Discovery.MaxLinksPerSeed)
	}
	if cfg.Discovery.SeedTimeout != 2*time.Second {
		t.Errorf("Expected seed_timeout=2s, got %s", cfg.Discovery.SeedTimeout)
	}
	if cfg.Generation.Temperature != 0.2 {
		t.Errorf("Expected temperature=0.2, got %f", cfg.Generation.Temperature)
	}
	if !strings.Contains(cfg.Prompts.QA, "Q: {{.Question}}") {
		t.Errorf("Expected QA prompt override, got %q", cfg.Prompts.QA)
	}

	// Untouched sections keep their defaults
	if cfg.Generation.SummaryMaxChars != 10000 {
		t.Errorf("Expected default summary_max_chars=10000, got %d", cfg.Generation.SummaryMaxChars)
	}
	if cfg.Prompts.Summary != DefaultSummaryPrompt {
		t.Error("Expected default summary prompt")
	}
	if cfg.Loader.Concurrency != 8 {
		t.Errorf("Expected default loader concurrency=8, got %d", cfg.Loader.Concurrency)
	}
}

func TestLoadPipelineConfig_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("PIPELINE_CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))

	cfg, err := LoadPipelineConfig()
	if err != nil {
		t.Fatalf("Expected defaults for missing file, got error: %v", err)
	}

	if cfg.Chunking.Size != 500 || cfg.Chunking.Overlap != 100 {
		t.Errorf("Expected chunking 500/100, got %d/%d", cfg.Chunking.Size, cfg.Chunking.Overlap)
	}
	if cfg.Retrieval.TopK != 2 {
		t.Errorf("Expected top_k=2, got %d", cfg.Retrieval.TopK)
	}
	if cfg.Discovery.MaxLinksPerSeed != 5 {
		t.Errorf("Expected max_links_per_seed=5, got %d", cfg.Discovery.MaxLinksPerSeed)
	}
	if cfg.Discovery.SeedTimeout != 5*time.Second {
		t.Errorf("Expected seed_timeout=5s, got %s", cfg.Discovery.SeedTimeout)
	}
	if cfg.Generation.Temperature != 0.7 {
		t.Errorf("Expected temperature=0.7, got %f", cfg.Generation.Temperature)
	}
	if cfg.Generation.MaxTokens != 0 {
		t.Errorf("Expected no max_tokens cap, got %d", cfg.Generation.MaxTokens)
	}
}

func TestLoadPipelineConfig_InvalidYAML(t *testing.T) {
	path := writeConfig(t, `chunking:
  size: [oops
`)

	_, err := LoadPipelineConfigFrom(path)
	if err == nil {
		t.Fatal("Expected error for invalid YAML")
	}
	if !strings.Contains(err.Error(), "failed to parse YAML") {
		t.Errorf("Expected 'failed to parse YAML' error, got: %v", err)
	}
}

func TestLoadPipelineConfig_InvalidValues(t *testing.T) {
	path := writeConfig(t, `chunking:
  size: 100
  overlap: 100
`)

	_, err := LoadPipelineConfigFrom(path)
	if err == nil {
		t.Fatal("Expected validation error")
	}
	if !strings.Contains(err.Error(), "invalid chunking overlap") {
		t.Errorf("Expected overlap error, got: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *PipelineConfig)
		wantErr string
	}{
		{"defaults are valid", func(c *PipelineConfig) {}, ""},
		{"zero chunk size", func(c *PipelineConfig) { c.Chunking.Size = 0 }, "invalid chunking size"},
		{"negative overlap", func(c *PipelineConfig) { c.Chunking.Overlap = -1 }, "invalid chunking overlap"},
		{"zero top_k", func(c *PipelineConfig) { c.Retrieval.TopK = 0 }, "invalid retrieval top_k"},
		{"negative link cap", func(c *PipelineConfig) { c.Discovery.MaxLinksPerSeed = -1 }, "negative max_links_per_seed"},
		{"zero seed timeout", func(c *PipelineConfig) { c.Discovery.SeedTimeout = 0 }, "invalid seed_timeout"},
		{"zero loader concurrency", func(c *PipelineConfig) { c.Loader.Concurrency = 0 }, "invalid loader concurrency"},
		{"temperature too high", func(c *PipelineConfig) { c.Generation.Temperature = 2.5 }, "invalid temperature"},
		{"provider default max_tokens", func(c *PipelineConfig) { c.Generation.MaxTokens = 0 }, ""},
		{"negative max_tokens", func(c *PipelineConfig) { c.Generation.MaxTokens = -1 }, "invalid max_tokens"},
		{"zero summary chars", func(c *PipelineConfig) { c.Generation.SummaryMaxChars = 0 }, "invalid summary_max_chars"},
		{"empty qa prompt", func(c *PipelineConfig) { c.Prompts.QA = "" }, "missing prompt"},
		{"broken summary template", func(c *PipelineConfig) { c.Prompts.Summary = "{{.Content" }, "invalid prompt template"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultPipelineConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Expected no error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}
