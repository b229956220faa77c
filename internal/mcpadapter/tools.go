package mcpadapter

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/web-rag-agent/internal/models"
)

// RAGService is the pipeline as seen by the MCP tools.
type RAGService interface {
	Query(ctx context.Context, req models.QueryRequest) (*models.AnswerResult, error)
	Summarize(ctx context.Context, req models.SummaryRequest) (*models.AnswerResult, error)
}

// QueryURLsInput is the MCP tool input schema (matches HTTP API field names).
type QueryURLsInput struct {
	URLs  []string `json:"urls" jsonschema:"seed page URLs; up to 5 links found on each page are read too"`
	Query string   `json:"query" jsonschema:"question to answer from the pages"`
}

type QueryURLsOutput struct {
	Answer  string   `json:"answer" jsonschema:"generated answer"`
	Sources []string `json:"sources" jsonschema:"source URL of every passage used, in retrieval order"`
}

type SummarizeURLsInput struct {
	URLs []string `json:"urls" jsonschema:"page URLs to summarize"`
}

type SummarizeURLsOutput struct {
	Answer string `json:"answer" jsonschema:"structured summary in Markdown"`
}

// NewQueryURLsHandler returns a tool handler that uses the given service.
// Pass the returned function to mcp.AddTool.
func NewQueryURLsHandler(service RAGService) func(context.Context, *mcp.CallToolRequest, QueryURLsInput) (*mcp.CallToolResult, QueryURLsOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input QueryURLsInput) (*mcp.CallToolResult, QueryURLsOutput, error) {
		result, err := service.Query(ctx, models.QueryRequest{
			URLs:  input.URLs,
			Query: input.Query,
		})
		if err != nil {
			return nil, QueryURLsOutput{}, err
		}

		sources := result.Sources
		if sources == nil {
			sources = []string{}
		}
		return nil, QueryURLsOutput{Answer: result.Text, Sources: sources}, nil
	}
}

// NewSummarizeURLsHandler returns a tool handler for page summaries.
func NewSummarizeURLsHandler(service RAGService) func(context.Context, *mcp.CallToolRequest, SummarizeURLsInput) (*mcp.CallToolResult, SummarizeURLsOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SummarizeURLsInput) (*mcp.CallToolResult, SummarizeURLsOutput, error) {
		result, err := service.Summarize(ctx, models.SummaryRequest{URLs: input.URLs})
		if err != nil {
			return nil, SummarizeURLsOutput{}, err
		}
		return nil, SummarizeURLsOutput{Answer: result.Text}, nil
	}
}

// NewServer registers the query_urls and summarize_urls tools.
func NewServer(service RAGService, name, version string) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    name,
			Version: version,
		}, nil,
	)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "query_urls",
		Description: "Answer a question using the content of the given web pages and the pages they link to",
	}, NewQueryURLsHandler(service))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "summarize_urls",
		Description: "Produce a structured Markdown summary of the given web pages",
	}, NewSummarizeURLsHandler(service))

	return server
}
