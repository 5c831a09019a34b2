package apify

import (
	"context"
	"errors"
	"net"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"search-rag-server/internal/domain/search"
	"search-rag-server/internal/infrastructure/metrics"
	"search-rag-server/utils/platformerrors"
)

const defaultTimeout = 40 * time.Second

// ClientConfig captures the knobs exposed to operators for the actor client.
type ClientConfig struct {
	BaseURL  string
	APIToken string
	Timeout  time.Duration
}

// Client calls the RAG Web Browser actor's standby search endpoint, which
// runs the actor synchronously and returns the dataset items as a JSON array.
type Client struct {
	httpClient *resty.Client
	timeout    time.Duration
}

var _ search.ActorClient = (*Client)(nil)

// NewClient creates a new actor client. The API token is sent as a bearer
// header on every request, never as part of the URL.
func NewClient(cfg ClientConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetAuthToken(cfg.APIToken).
		SetHeader("User-Agent", "search-rag-server/1.0")

	return &Client{
		httpClient: httpClient,
		timeout:    timeout,
	}
}

// Search performs one synchronous actor run. The call is not retried; the
// caller owns any retry policy.
func (c *Client) Search(ctx context.Context, req search.RunRequest) ([]search.ActorResult, error) {
	timeout := c.timeout
	if req.RequestTimeoutSecs > 0 {
		timeout = time.Duration(req.RequestTimeoutSecs) * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	params := map[string]string{
		"query":                req.Query,
		"maxResults":           strconv.Itoa(req.MaxResults),
		"scrapingTool":         string(req.ScrapingTool),
		"outputFormat":         string(req.OutputFormat),
		"requestTimeoutSecs":   strconv.Itoa(int(timeout / time.Second)),
		"removeCookieWarnings": strconv.FormatBool(req.RemoveCookieWarnings),
		"debugMode":            strconv.FormatBool(req.DebugMode),
	}
	if req.DynamicContentWaitSecs > 0 {
		params["dynamicContentWaitSecs"] = strconv.FormatFloat(req.DynamicContentWaitSecs, 'f', -1, 64)
	}

	start := time.Now()
	var results []search.ActorResult
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&results).
		Get("/search")
	metrics.ObserveActorLatency(time.Since(start).Seconds())

	if err != nil {
		if isTimeout(ctx, err) {
			return nil, platformerrors.NewErrorWithContext(ctx, platformerrors.LayerInfrastructure,
				platformerrors.ErrorTypeTimeout, "actor run exceeded request timeout", err,
				"0b6f4c9a-2e17-4d85-b3a0-7c48f1d95e26",
				map[string]any{"timeout_secs": int(timeout / time.Second)})
		}
		// Covers both transport failures and 2xx bodies that fail to decode;
		// in the latter case the raw body is kept for diagnostics.
		fields := map[string]any{}
		if resp != nil && resp.RawResponse != nil {
			fields["status"] = resp.StatusCode()
			fields["body"] = truncateBody(resp.String(), 2048)
		}
		return nil, platformerrors.NewErrorWithContext(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeUpstream, "actor request failed", err,
			"d94a7e53-6b08-4f1c-a2d7-15e83c60bf49", fields)
	}

	if resp.IsError() {
		log.Warn().
			Int("status", resp.StatusCode()).
			Str("query", req.Query).
			Msg("actor returned error status")
		return nil, platformerrors.NewErrorWithContext(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeUpstream, "actor returned error status", nil,
			"7c25d1b8-93fa-4e06-8b54-f60a29d7c831",
			map[string]any{
				"status": resp.StatusCode(),
				"body":   truncateBody(resp.String(), 2048),
			})
	}

	// The actor always responds with a JSON array; a nil slice here means an
	// empty dataset, which is a valid (empty) result.
	if results == nil {
		results = []search.ActorResult{}
	}
	return results, nil
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func truncateBody(body string, maxLen int) string {
	if len(body) <= maxLen {
		return body
	}
	return body[:maxLen]
}
