package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"

	domainsearch "search-rag-server/internal/domain/search"
	"search-rag-server/internal/infrastructure/metrics"
)

// PersonSearchArgs defines the arguments for the person_search tool
type PersonSearchArgs struct {
	Name          string `json:"name" jsonschema:"name of the person to search for"`
	Context       string `json:"context,omitempty" jsonschema:"additional context or specific questions about the person"`
	MaxResults    int    `json:"max_results,omitempty" jsonschema:"maximum number of search results to process (default 3)"`
	FocusXAccount bool   `json:"focus_x_account,omitempty" jsonschema:"bias the search toward finding the person's X/Twitter account"`
}

// RawSearchArgs defines the arguments for the raw_search tool
type RawSearchArgs struct {
	Query        string `json:"query" jsonschema:"search query or URL to scrape"`
	MaxResults   int    `json:"max_results,omitempty" jsonschema:"maximum number of search results to process (default 3)"`
	ScrapingTool string `json:"scraping_tool,omitempty" jsonschema:"scraping tool, either 'browser-playwright' or 'raw-http' (default browser-playwright)"`
	OutputFormat string `json:"output_format,omitempty" jsonschema:"content format, one of 'markdown', 'text', 'html' (default markdown)"`
}

// RawSearchOutput is the structured result of the raw_search tool
type RawSearchOutput struct {
	Query   string                     `json:"query"`
	Count   int                        `json:"count"`
	Results []domainsearch.ActorResult `json:"results"`
}

// SearchMCP handles MCP tool registration for the search service
type SearchMCP struct {
	searchService *domainsearch.SearchService
}

// NewSearchMCP creates a new search MCP handler
func NewSearchMCP(searchService *domainsearch.SearchService) *SearchMCP {
	return &SearchMCP{
		searchService: searchService,
	}
}

// RegisterTools registers the search tools with the MCP server
func (s *SearchMCP) RegisterTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "person_search",
		Description: "Search the web for information about a person, including their social media profiles.",
	}, s.handlePersonSearch)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "raw_search",
		Description: "Perform a raw web search or scrape a specific URL with full control over actor parameters.",
	}, s.handleRawSearch)
}

func (s *SearchMCP) handlePersonSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	args PersonSearchArgs,
) (*mcp.CallToolResult, domainsearch.PersonSearchResponse, error) {
	start := time.Now()

	result, err := s.searchService.PersonSearch(ctx, domainsearch.PersonSearchRequest{
		Name:          args.Name,
		Context:       args.Context,
		MaxResults:    args.MaxResults,
		FocusXAccount: args.FocusXAccount,
	})
	if err != nil {
		metrics.RecordToolCall("person_search", "error", time.Since(start).Seconds())
		log.Error().Err(err).Str("tool", "person_search").Str("name", args.Name).Msg("person search failed")
		return nil, domainsearch.PersonSearchResponse{}, err
	}

	metrics.RecordToolCall("person_search", "ok", time.Since(start).Seconds())

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: formatPersonMarkdown(result)},
		},
	}, *result, nil
}

func (s *SearchMCP) handleRawSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	args RawSearchArgs,
) (*mcp.CallToolResult, RawSearchOutput, error) {
	start := time.Now()

	outputFormat := domainsearch.OutputFormat(args.OutputFormat)
	if args.OutputFormat == "" {
		outputFormat = domainsearch.OutputFormatMarkdown
	}

	results, err := s.searchService.RawSearch(ctx, domainsearch.RawSearchRequest{
		Query:        args.Query,
		MaxResults:   args.MaxResults,
		ScrapingTool: domainsearch.ScrapingTool(args.ScrapingTool),
		OutputFormat: outputFormat,
	})
	if err != nil {
		metrics.RecordToolCall("raw_search", "error", time.Since(start).Seconds())
		log.Error().Err(err).Str("tool", "raw_search").Str("query", args.Query).Msg("raw search failed")
		return nil, RawSearchOutput{}, err
	}

	metrics.RecordToolCall("raw_search", "ok", time.Since(start).Seconds())

	output := RawSearchOutput{
		Query:   args.Query,
		Count:   len(results),
		Results: results,
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: formatRawMarkdown(args.Query, outputFormat, results)},
		},
	}, output, nil
}

// formatPersonMarkdown renders a person search response as readable markdown
// for MCP clients that only display text content.
func formatPersonMarkdown(resp *domainsearch.PersonSearchResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Information about %s\n\n", resp.PersonName)

	links := resp.SocialLinks
	if links.XTwitter != nil || links.Instagram != nil || links.Facebook != nil {
		b.WriteString("## Social Media\n")
		if links.XTwitter != nil {
			fmt.Fprintf(&b, "- X/Twitter: %s\n", *links.XTwitter)
		}
		if links.Instagram != nil {
			fmt.Fprintf(&b, "- Instagram: %s\n", *links.Instagram)
		}
		if links.Facebook != nil {
			fmt.Fprintf(&b, "- Facebook: %s\n", *links.Facebook)
		}
		b.WriteString("\n")
	}

	if len(resp.Sources) > 0 {
		b.WriteString("## Sources\n")
		for i, source := range resp.Sources {
			title := source.Title
			if title == "" {
				title = "Untitled"
			}
			url := source.URL
			if url == "" {
				url = "#"
			}
			fmt.Fprintf(&b, "%d. [%s](%s)\n", i+1, title, url)
		}
		b.WriteString("\n")
	}

	if len(resp.Content) > 0 {
		b.WriteString("## Content\n")
		for i, content := range resp.Content {
			fmt.Fprintf(&b, "### Content %d (Source: %d)\n\n%s\n\n", i+1, i+1, content)
		}
	}

	return b.String()
}

// formatRawMarkdown renders raw search results as readable markdown.
func formatRawMarkdown(query string, format domainsearch.OutputFormat, results []domainsearch.ActorResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Search Results for '%s'\n\n", query)

	for i, result := range results {
		var title, url string
		if result.Metadata != nil {
			title = result.Metadata.Title
			url = result.Metadata.URL
		}
		if title == "" && result.SearchResult != nil {
			title = result.SearchResult.Title
		}
		if url == "" && result.SearchResult != nil {
			url = result.SearchResult.URL
		}
		if title == "" {
			title = fmt.Sprintf("Result %d", i+1)
		}
		if url == "" {
			url = "No URL available"
		}

		fmt.Fprintf(&b, "## %d. %s\n", i+1, title)
		fmt.Fprintf(&b, "Source: %s\n\n", url)

		switch {
		case format == domainsearch.OutputFormatMarkdown && result.Markdown != "":
			fmt.Fprintf(&b, "%s\n\n", result.Markdown)
		case format == domainsearch.OutputFormatText && result.Text != "":
			fmt.Fprintf(&b, "```\n%s\n```\n\n", result.Text)
		case format == domainsearch.OutputFormatHTML && result.HTML != "":
			b.WriteString("HTML content available but not displayed in this view.\n\n")
		default:
			description := "No description available"
			if result.SearchResult != nil && result.SearchResult.Description != "" {
				description = result.SearchResult.Description
			}
			fmt.Fprintf(&b, "%s\n\n", description)
		}

		b.WriteString("---\n\n")
	}

	if len(results) == 0 {
		b.WriteString("No results found for this query.\n")
	}

	return b.String()
}
