package search

import "context"

// ScrapingTool selects how the actor fetches result pages
type ScrapingTool string

const (
	// ScrapingToolBrowser renders pages in a headless browser, slower but
	// handles dynamic content
	ScrapingToolBrowser ScrapingTool = "browser-playwright"
	// ScrapingToolRawHTTP fetches raw HTML without rendering
	ScrapingToolRawHTTP ScrapingTool = "raw-http"
)

// Valid reports whether the value is one of the actor's accepted tools.
func (t ScrapingTool) Valid() bool {
	return t == ScrapingToolBrowser || t == ScrapingToolRawHTTP
}

// OutputFormat selects which content representation the actor extracts
type OutputFormat string

const (
	OutputFormatMarkdown OutputFormat = "markdown"
	OutputFormatText     OutputFormat = "text"
	OutputFormatHTML     OutputFormat = "html"
)

// Valid reports whether the value is one of the actor's accepted formats.
func (f OutputFormat) Valid() bool {
	return f == OutputFormatMarkdown || f == OutputFormatText || f == OutputFormatHTML
}

// RunRequest is the parameter set for a single synchronous actor run
type RunRequest struct {
	Query                  string
	MaxResults             int
	ScrapingTool           ScrapingTool
	OutputFormat           OutputFormat
	RequestTimeoutSecs     int
	DynamicContentWaitSecs float64
	RemoveCookieWarnings   bool
	DebugMode              bool
}

// SearchHit is the actor's echo of the underlying search engine result
type SearchHit struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
}

// ResultMetadata describes the scraped page itself
type ResultMetadata struct {
	Title        string `json:"title,omitempty"`
	Description  string `json:"description,omitempty"`
	URL          string `json:"url,omitempty"`
	Author       string `json:"author,omitempty"`
	LanguageCode string `json:"languageCode,omitempty"`
}

// ActorResult is one dataset item returned by the actor. Exactly one of the
// content fields is populated, matching the requested output format.
type ActorResult struct {
	SearchResult *SearchHit      `json:"searchResult,omitempty"`
	Metadata     *ResultMetadata `json:"metadata,omitempty"`
	Crawl        map[string]any  `json:"crawl,omitempty"`
	Markdown     string          `json:"markdown,omitempty"`
	Text         string          `json:"text,omitempty"`
	HTML         string          `json:"html,omitempty"`
}

// Content returns the extracted content matching the requested format.
func (r ActorResult) Content(format OutputFormat) string {
	switch format {
	case OutputFormatText:
		return r.Text
	case OutputFormatHTML:
		return r.HTML
	default:
		return r.Markdown
	}
}

// Source identifies one upstream page a response entry came from
type Source struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// SocialLinks holds profile URLs discovered during a person search. Nil
// means the platform was not found in any result.
type SocialLinks struct {
	XTwitter  *string `json:"x_twitter"`
	Instagram *string `json:"instagram"`
	Facebook  *string `json:"facebook"`
}

// PersonSearchResponse is the shaped result of a person search.
// Sources[i] and Content[i] always describe the same upstream result and
// keep the actor's relevance ordering.
type PersonSearchResponse struct {
	Query       string      `json:"query"`
	PersonName  string      `json:"person_name"`
	Sources     []Source    `json:"sources"`
	Content     []string    `json:"content"`
	SocialLinks SocialLinks `json:"social_links"`
}

// PersonSearchRequest carries the inputs of a person search
type PersonSearchRequest struct {
	Name          string
	Context       string
	MaxResults    int
	FocusXAccount bool
}

// RawSearchRequest carries the inputs of a raw search. Zero values fall back
// to service defaults; RemoveCookieWarnings is a pointer so that an explicit
// false survives defaulting.
type RawSearchRequest struct {
	Query                  string
	MaxResults             int
	ScrapingTool           ScrapingTool
	OutputFormat           OutputFormat
	RequestTimeoutSecs     int
	DynamicContentWaitSecs float64
	RemoveCookieWarnings   *bool
	DebugMode              bool
}

// ActorClient defines the actor operations required by the domain layer
type ActorClient interface {
	Search(ctx context.Context, req RunRequest) ([]ActorResult, error)
}
