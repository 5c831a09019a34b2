package search

import (
	"fmt"
	"regexp"
)

var (
	xProfileRe         = regexp.MustCompile(`https?://(?:www\.)?(twitter\.com|x\.com)/([A-Za-z0-9_]+)`)
	instagramProfileRe = regexp.MustCompile(`https?://(?:www\.)?instagram\.com/([A-Za-z0-9_.]+)`)
	facebookProfileRe  = regexp.MustCompile(`https?://(?:www\.)?facebook\.com/([A-Za-z0-9.]+)`)
)

// ToPersonResponse shapes raw actor results into a person search response.
// Every result contributes exactly one source and one content entry, in the
// actor's order, so len(Sources) == len(Content) holds even when individual
// fields are missing upstream.
func ToPersonResponse(query, personName string, results []ActorResult) *PersonSearchResponse {
	resp := &PersonSearchResponse{
		Query:      query,
		PersonName: personName,
		Sources:    make([]Source, 0, len(results)),
		Content:    make([]string, 0, len(results)),
	}

	for _, result := range results {
		source := sourceOf(result)
		content := result.Content(OutputFormatMarkdown)

		resp.Sources = append(resp.Sources, source)
		resp.Content = append(resp.Content, content)

		collectSocialLinks(&resp.SocialLinks, source.URL, content)
	}

	return resp
}

// ToRawResponse passes actor results through, pruning the actor's crawl
// diagnostics block unless debug mode was requested. No fields are invented.
func ToRawResponse(results []ActorResult, debugMode bool) []ActorResult {
	if results == nil {
		return []ActorResult{}
	}
	if debugMode {
		return results
	}

	pruned := make([]ActorResult, len(results))
	for i, result := range results {
		result.Crawl = nil
		pruned[i] = result
	}
	return pruned
}

// sourceOf extracts url/title from the search engine hit, falling back to
// the page metadata when the hit lacks them.
func sourceOf(result ActorResult) Source {
	var source Source
	if result.SearchResult != nil {
		source.URL = result.SearchResult.URL
		source.Title = result.SearchResult.Title
	}
	if result.Metadata != nil {
		if source.URL == "" {
			source.URL = result.Metadata.URL
		}
		if source.Title == "" {
			source.Title = result.Metadata.Title
		}
	}
	return source
}

// collectSocialLinks fills links from a result's URL and content. The first
// match per platform wins; later results never overwrite earlier ones.
func collectSocialLinks(links *SocialLinks, url, content string) {
	if links.XTwitter == nil {
		if xProfileRe.MatchString(url) {
			links.XTwitter = &url
		} else if m := xProfileRe.FindStringSubmatch(content); m != nil {
			profile := fmt.Sprintf("https://%s/%s", m[1], m[2])
			links.XTwitter = &profile
		}
	}
	if links.Instagram == nil {
		if instagramProfileRe.MatchString(url) {
			links.Instagram = &url
		} else if m := instagramProfileRe.FindStringSubmatch(content); m != nil {
			profile := fmt.Sprintf("https://instagram.com/%s", m[1])
			links.Instagram = &profile
		}
	}
	if links.Facebook == nil {
		if facebookProfileRe.MatchString(url) {
			links.Facebook = &url
		} else if m := facebookProfileRe.FindStringSubmatch(content); m != nil {
			profile := fmt.Sprintf("https://facebook.com/%s", m[1])
			links.Facebook = &profile
		}
	}
}
