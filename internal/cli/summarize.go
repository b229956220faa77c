package cli

import (
	"encoding/json"
	"fmt"

	"github.com/povarna/generative-ai-agents/web-rag-agent/internal/models"
	"github.com/spf13/cobra"
)

var summarizeURLs []string

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Summarize web pages",
	Long: `Fetch the given pages (no link following) and print a structured Markdown
summary of their combined text.

Examples:
  web-rag summarize -u https://go.dev/blog/go1.22`,
	RunE: runSummarize,
}

func init() {
	rootCmd.AddCommand(summarizeCmd)
	summarizeCmd.Flags().StringSliceVarP(&summarizeURLs, "url", "u", nil, "page URL (repeatable, required)")
	summarizeCmd.MarkFlagRequired("url")
}

func runSummarize(cmd *cobra.Command, args []string) error {
	stop := startSpinner(cmd.ErrOrStderr(), "[cyan]Summarizing[reset]")
	result, err := service.Summarize(cmd.Context(), models.SummaryRequest{URLs: summarizeURLs})
	stop()
	if err != nil {
		return fmt.Errorf("summary failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{"answer": result.Text})
	}

	fmt.Fprintln(out, result.Text)
	return nil
}
