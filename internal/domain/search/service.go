package search

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"search-rag-server/utils/platformerrors"
)

// Options carries operator-tunable defaults applied when a request leaves a
// field unset.
type Options struct {
	DefaultMaxResults    int
	PersonContentWait    float64
	RemoveCookieWarnings bool
}

// SearchService orchestrates person and raw searches against the actor while
// remaining transport-agnostic. Both the REST and MCP front ends delegate
// here so parameter mapping lives in one place.
type SearchService struct {
	client ActorClient
	opts   Options
}

// NewSearchService creates a new search service.
func NewSearchService(client ActorClient, opts Options) *SearchService {
	if opts.DefaultMaxResults <= 0 {
		opts.DefaultMaxResults = 3
	}
	if opts.PersonContentWait <= 0 {
		opts.PersonContentWait = 3
	}
	return &SearchService{
		client: client,
		opts:   opts,
	}
}

// PersonSearch builds a person query, runs the actor, and shapes the results.
func (s *SearchService) PersonSearch(ctx context.Context, req PersonSearchRequest) (*PersonSearchResponse, error) {
	query, err := BuildPersonQuery(ctx, req.Name, req.Context, req.FocusXAccount)
	if err != nil {
		return nil, err
	}

	maxResults := req.MaxResults
	if maxResults <= 0 {
		maxResults = s.opts.DefaultMaxResults
	}

	results, err := s.client.Search(ctx, RunRequest{
		Query:      query,
		MaxResults: maxResults,
		// Browser rendering picks up dynamic profile pages that raw HTTP misses.
		ScrapingTool:           ScrapingToolBrowser,
		OutputFormat:           OutputFormatMarkdown,
		DynamicContentWaitSecs: s.opts.PersonContentWait,
		RemoveCookieWarnings:   s.opts.RemoveCookieWarnings,
	})
	if err != nil {
		return nil, err
	}

	resp := ToPersonResponse(query, req.Name, results)
	log.Debug().
		Str("query", query).
		Int("sources", len(resp.Sources)).
		Msg("person search shaped")
	return resp, nil
}

// RawSearch validates parameters and passes the actor's results through.
func (s *SearchService) RawSearch(ctx context.Context, req RawSearchRequest) ([]ActorResult, error) {
	if strings.TrimSpace(req.Query) == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "search query must not be empty", nil,
			"8a41e6d2-05cb-47f9-9d13-62e8b74afc05")
	}

	run := RunRequest{
		Query:                  req.Query,
		MaxResults:             req.MaxResults,
		ScrapingTool:           req.ScrapingTool,
		OutputFormat:           req.OutputFormat,
		RequestTimeoutSecs:     req.RequestTimeoutSecs,
		DynamicContentWaitSecs: req.DynamicContentWaitSecs,
		RemoveCookieWarnings:   s.opts.RemoveCookieWarnings,
		DebugMode:              req.DebugMode,
	}
	if run.MaxResults <= 0 {
		run.MaxResults = s.opts.DefaultMaxResults
	}
	if run.ScrapingTool == "" {
		run.ScrapingTool = ScrapingToolBrowser
	}
	if run.OutputFormat == "" {
		run.OutputFormat = OutputFormatMarkdown
	}
	if req.RemoveCookieWarnings != nil {
		run.RemoveCookieWarnings = *req.RemoveCookieWarnings
	}

	if !run.ScrapingTool.Valid() {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			"scraping_tool must be 'browser-playwright' or 'raw-http'", nil,
			"c7d95b30-41fe-4a68-b2aa-0f3d8e619c47")
	}
	if !run.OutputFormat.Valid() {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			"output_format must be 'markdown', 'text', or 'html'", nil,
			"5e0a9c18-7d34-4f02-9b81-ac52e6f4d7b9")
	}

	results, err := s.client.Search(ctx, run)
	if err != nil {
		return nil, err
	}

	return ToRawResponse(results, req.DebugMode), nil
}
