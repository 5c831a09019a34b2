package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"search-rag-server/utils/platformerrors"
)

// stubActorClient records the last run request and returns canned results.
type stubActorClient struct {
	lastRun RunRequest
	results []ActorResult
	err     error
}

func (s *stubActorClient) Search(_ context.Context, req RunRequest) ([]ActorResult, error) {
	s.lastRun = req
	if s.err != nil {
		return nil, s.err
	}
	return s.results, nil
}

func newTestService(client *stubActorClient) *SearchService {
	return NewSearchService(client, Options{
		DefaultMaxResults:    3,
		PersonContentWait:    3,
		RemoveCookieWarnings: true,
	})
}

func TestPersonSearchRunParameters(t *testing.T) {
	client := &stubActorClient{
		results: []ActorResult{
			{Metadata: &ResultMetadata{Title: "Bio", URL: "https://example.com"}, Markdown: "bio"},
		},
	}
	svc := newTestService(client)

	resp, err := svc.PersonSearch(context.Background(), PersonSearchRequest{
		Name:    "Jane Doe",
		Context: "astrophysics",
	})
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe astrophysics", client.lastRun.Query)
	assert.Equal(t, 3, client.lastRun.MaxResults)
	assert.Equal(t, ScrapingToolBrowser, client.lastRun.ScrapingTool)
	assert.Equal(t, OutputFormatMarkdown, client.lastRun.OutputFormat)
	assert.Equal(t, 3.0, client.lastRun.DynamicContentWaitSecs)
	assert.True(t, client.lastRun.RemoveCookieWarnings)

	assert.Equal(t, "Jane Doe", resp.PersonName)
	assert.Len(t, resp.Sources, 1)
	assert.Len(t, resp.Content, 1)
}

func TestPersonSearchEmptyNameRejected(t *testing.T) {
	client := &stubActorClient{}
	svc := newTestService(client)

	_, err := svc.PersonSearch(context.Background(), PersonSearchRequest{Name: ""})
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
}

func TestRawSearchDefaults(t *testing.T) {
	client := &stubActorClient{results: []ActorResult{}}
	svc := newTestService(client)

	results, err := svc.RawSearch(context.Background(), RawSearchRequest{Query: "openai.com"})
	require.NoError(t, err)
	assert.Empty(t, results)

	assert.Equal(t, "openai.com", client.lastRun.Query)
	assert.Equal(t, 3, client.lastRun.MaxResults)
	assert.Equal(t, ScrapingToolBrowser, client.lastRun.ScrapingTool)
	assert.Equal(t, OutputFormatMarkdown, client.lastRun.OutputFormat)
	assert.True(t, client.lastRun.RemoveCookieWarnings)
}

func TestRawSearchExplicitCookieWarningOverride(t *testing.T) {
	client := &stubActorClient{results: []ActorResult{}}
	svc := newTestService(client)

	keep := false
	_, err := svc.RawSearch(context.Background(), RawSearchRequest{
		Query:                "openai.com",
		RemoveCookieWarnings: &keep,
	})
	require.NoError(t, err)
	assert.False(t, client.lastRun.RemoveCookieWarnings)
}

func TestRawSearchValidation(t *testing.T) {
	client := &stubActorClient{}
	svc := newTestService(client)
	ctx := context.Background()

	tests := []struct {
		name string
		req  RawSearchRequest
	}{
		{"empty query", RawSearchRequest{}},
		{"bad scraping tool", RawSearchRequest{Query: "q", ScrapingTool: "selenium"}},
		{"bad output format", RawSearchRequest{Query: "q", OutputFormat: "pdf"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.RawSearch(ctx, tc.req)
			require.Error(t, err)
			assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
		})
	}
}

func TestRawSearchDebugModeKeepsCrawl(t *testing.T) {
	client := &stubActorClient{
		results: []ActorResult{
			{Markdown: "content", Crawl: map[string]any{"httpStatusCode": 200}},
		},
	}
	svc := newTestService(client)

	pruned, err := svc.RawSearch(context.Background(), RawSearchRequest{Query: "q"})
	require.NoError(t, err)
	require.Len(t, pruned, 1)
	assert.Nil(t, pruned[0].Crawl)

	kept, err := svc.RawSearch(context.Background(), RawSearchRequest{Query: "q", DebugMode: true})
	require.NoError(t, err)
	require.Len(t, kept, 1)
	assert.NotNil(t, kept[0].Crawl)
	assert.True(t, client.lastRun.DebugMode)
}
