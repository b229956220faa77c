package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/web-rag-agent/internal/models"
	"github.com/povarna/generative-ai-agents/web-rag-agent/internal/setup"
	"github.com/povarna/generative-ai-agents/web-rag-agent/internal/setup/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type ragService interface {
	Query(ctx context.Context, req models.QueryRequest) (*models.AnswerResult, error)
	Summarize(ctx context.Context, req models.SummaryRequest) (*models.AnswerResult, error)
}

var (
	logLevel   string
	jsonOutput bool
	quiet      bool

	service ragService
	closeFn func() error

	// newService builds the pipeline; tests replace it.
	newService = func(ctx context.Context, cfg *setup.Config, log *zerolog.Logger) (ragService, func() error, error) {
		deps, err := setup.Wire(ctx, cfg, log)
		if err != nil {
			return nil, nil, err
		}
		return deps.Pipeline, deps.Close, nil
	}
)

var rootCmd = &cobra.Command{
	Use:   "web-rag",
	Short: "Ask questions about web pages or summarize them",
	Long: `web-rag runs the retrieval pipeline of the web RAG agent from the terminal.

Example usage:
  web-rag query -u https://go.dev/doc -q "How are modules versioned?"
  web-rag summarize -u https://go.dev/blog/go1.22`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		cfg := setup.LoadConfig()
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}
		log := logger.New(cfg.LogLevel, true)

		svc, closer, err := newService(cmd.Context(), cfg, &log)
		if err != nil {
			return fmt.Errorf("failed to initialize pipeline: %w", err)
		}
		service = svc
		closeFn = closer
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if closeFn != nil {
			return closeFn()
		}
		return nil
	},
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (default from LOG_LEVEL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "hide the progress spinner")
}
