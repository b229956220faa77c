package cli

import (
	"encoding/json"
	"fmt"

	"github.com/povarna/generative-ai-agents/web-rag-agent/internal/models"
	"github.com/spf13/cobra"
)

var (
	queryURLs []string
	queryText string
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Answer a question from web pages",
	Long: `Fetch the given pages and up to five pages each one links to, then answer
the question from the most relevant passages.

Examples:
  web-rag query -u https://go.dev/doc -q "What is a workspace?"
  web-rag query -u https://a.test -u https://b.test -q "Compare them" --json`,
	RunE: runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)
	queryCmd.Flags().StringSliceVarP(&queryURLs, "url", "u", nil, "page URL (repeatable, required)")
	queryCmd.Flags().StringVarP(&queryText, "query", "q", "", "question to answer (required)")
	queryCmd.MarkFlagRequired("url")
	queryCmd.MarkFlagRequired("query")
}

func runQuery(cmd *cobra.Command, args []string) error {
	stop := startSpinner(cmd.ErrOrStderr(), "[cyan]Reading pages[reset]")
	result, err := service.Query(cmd.Context(), models.QueryRequest{
		URLs:  queryURLs,
		Query: queryText,
	})
	stop()
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		sources := result.Sources
		if sources == nil {
			sources = []string{}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"answer":  result.Text,
			"sources": sources,
		})
	}

	fmt.Fprintln(out, result.Text)
	if len(result.Sources) > 0 {
		fmt.Fprintln(out, "\nSources:")
		for i, src := range result.Sources {
			fmt.Fprintf(out, "  [%d] %s\n", i+1, src)
		}
	}
	return nil
}
