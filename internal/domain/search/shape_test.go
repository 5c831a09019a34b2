package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPersonResponseKeepsSourcesAndContentAligned(t *testing.T) {
	results := []ActorResult{
		{
			SearchResult: &SearchHit{Title: "First", URL: "https://one.example"},
			Markdown:     "first content",
		},
		{
			// No searchResult; url/title must fall back to metadata.
			Metadata: &ResultMetadata{Title: "Second", URL: "https://two.example"},
			Markdown: "second content",
		},
		{
			// Nothing usable upstream still yields a (blank) pair so
			// indices keep lining up.
			Crawl: map[string]any{"httpStatusCode": 200},
		},
	}

	resp := ToPersonResponse("Jane Doe biography", "Jane Doe", results)

	require.Equal(t, len(resp.Sources), len(resp.Content))
	require.Len(t, resp.Sources, 3)

	assert.Equal(t, "Jane Doe biography", resp.Query)
	assert.Equal(t, "Jane Doe", resp.PersonName)

	assert.Equal(t, Source{URL: "https://one.example", Title: "First"}, resp.Sources[0])
	assert.Equal(t, "first content", resp.Content[0])
	assert.Equal(t, Source{URL: "https://two.example", Title: "Second"}, resp.Sources[1])
	assert.Equal(t, "second content", resp.Content[1])
	assert.Equal(t, Source{}, resp.Sources[2])
	assert.Equal(t, "", resp.Content[2])
}

func TestToPersonResponseEmptyResults(t *testing.T) {
	resp := ToPersonResponse("Jane Doe", "Jane Doe", nil)

	require.NotNil(t, resp)
	assert.Empty(t, resp.Sources)
	assert.Empty(t, resp.Content)
	assert.Nil(t, resp.SocialLinks.XTwitter)
}

func TestToPersonResponseSocialLinksFromURL(t *testing.T) {
	results := []ActorResult{
		{
			Metadata: &ResultMetadata{Title: "Profile", URL: "https://x.com/janedoe"},
			Markdown: "profile page",
		},
	}

	resp := ToPersonResponse("Jane Doe", "Jane Doe", results)

	require.NotNil(t, resp.SocialLinks.XTwitter)
	assert.Equal(t, "https://x.com/janedoe", *resp.SocialLinks.XTwitter)
}

func TestToPersonResponseSocialLinksFromContent(t *testing.T) {
	results := []ActorResult{
		{
			Metadata: &ResultMetadata{Title: "About", URL: "https://example.com/about"},
			Markdown: "Find me at https://twitter.com/janedoe and https://instagram.com/jane.doe " +
				"or https://www.facebook.com/jane.doe",
		},
	}

	resp := ToPersonResponse("Jane Doe", "Jane Doe", results)

	require.NotNil(t, resp.SocialLinks.XTwitter)
	assert.Equal(t, "https://twitter.com/janedoe", *resp.SocialLinks.XTwitter)
	require.NotNil(t, resp.SocialLinks.Instagram)
	assert.Equal(t, "https://instagram.com/jane.doe", *resp.SocialLinks.Instagram)
	require.NotNil(t, resp.SocialLinks.Facebook)
	assert.Equal(t, "https://facebook.com/jane.doe", *resp.SocialLinks.Facebook)
}

func TestToPersonResponseFirstSocialMatchWins(t *testing.T) {
	results := []ActorResult{
		{Metadata: &ResultMetadata{URL: "https://x.com/first"}, Markdown: "a"},
		{Metadata: &ResultMetadata{URL: "https://x.com/second"}, Markdown: "b"},
	}

	resp := ToPersonResponse("Jane Doe", "Jane Doe", results)

	require.NotNil(t, resp.SocialLinks.XTwitter)
	assert.Equal(t, "https://x.com/first", *resp.SocialLinks.XTwitter)
}

func TestToRawResponsePrunesCrawlDiagnostics(t *testing.T) {
	results := []ActorResult{
		{
			SearchResult: &SearchHit{Title: "Hit", URL: "https://example.com"},
			Crawl:        map[string]any{"loadedAt": "2026-01-01T00:00:00Z"},
			Markdown:     "content",
		},
	}

	pruned := ToRawResponse(results, false)
	require.Len(t, pruned, 1)
	assert.Nil(t, pruned[0].Crawl)
	assert.Equal(t, "content", pruned[0].Markdown)

	// Original slice keeps its diagnostics.
	assert.NotNil(t, results[0].Crawl)

	kept := ToRawResponse(results, true)
	require.Len(t, kept, 1)
	assert.NotNil(t, kept[0].Crawl)
}

func TestToRawResponseNilResults(t *testing.T) {
	assert.Empty(t, ToRawResponse(nil, false))
	assert.NotNil(t, ToRawResponse(nil, false))
}

func TestActorResultContent(t *testing.T) {
	result := ActorResult{Markdown: "md", Text: "txt", HTML: "<p>html</p>"}

	assert.Equal(t, "md", result.Content(OutputFormatMarkdown))
	assert.Equal(t, "txt", result.Content(OutputFormatText))
	assert.Equal(t, "<p>html</p>", result.Content(OutputFormatHTML))
}
