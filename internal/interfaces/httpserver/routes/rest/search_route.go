package rest

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	domainsearch "search-rag-server/internal/domain/search"
	"search-rag-server/internal/interfaces/httpserver/responses"
	"search-rag-server/utils/platformerrors"
)

// SearchRequestBody is the POST /search payload
type SearchRequestBody struct {
	Name          string `json:"name" example:"Elon Musk"`
	Context       string `json:"context,omitempty" example:"SpaceX"`
	MaxResults    int    `json:"max_results,omitempty" example:"3"`
	FocusXAccount bool   `json:"focus_x_account,omitempty"`
}

// RawSearchRequestBody is the POST /raw-search payload
type RawSearchRequestBody struct {
	Query                  string  `json:"query" example:"openai.com"`
	MaxResults             int     `json:"max_results,omitempty" example:"3"`
	ScrapingTool           string  `json:"scraping_tool,omitempty" example:"browser-playwright"`
	OutputFormat           string  `json:"output_format,omitempty" example:"markdown"`
	RequestTimeoutSecs     int     `json:"request_timeout_secs,omitempty" example:"40"`
	DynamicContentWaitSecs float64 `json:"dynamic_content_wait_secs,omitempty" example:"1"`
	RemoveCookieWarnings   *bool   `json:"remove_cookie_warnings,omitempty"`
	DebugMode              bool    `json:"debug_mode,omitempty"`
}

// SearchRoute exposes the search operations over plain HTTP/JSON
type SearchRoute struct {
	searchService *domainsearch.SearchService
}

// NewSearchRoute creates a new REST search route handler
func NewSearchRoute(searchService *domainsearch.SearchService) *SearchRoute {
	return &SearchRoute{
		searchService: searchService,
	}
}

// RegisterRouter registers the REST endpoints
func (route *SearchRoute) RegisterRouter(router *gin.RouterGroup) {
	router.GET("/health", route.health)
	router.POST("/search", route.personSearch)
	router.POST("/raw-search", route.rawSearch)
}

// health reports service liveness.
// @Summary Health check
// @Tags Search API
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (route *SearchRoute) health(reqCtx *gin.Context) {
	reqCtx.JSON(200, gin.H{"status": "ok", "message": "API is running"})
}

// personSearch searches the web for information about a person.
// @Summary Person search
// @Description Searches the web for a person and returns shaped sources, content, and discovered social profiles.
// @Tags Search API
// @Accept json
// @Produce json
// @Param request body SearchRequestBody true "Person search parameters"
// @Success 200 {object} search.PersonSearchResponse
// @Failure 400 {object} responses.ErrorResponse "Missing or invalid name"
// @Failure 502 {object} responses.ErrorResponse "Upstream actor failure"
// @Failure 504 {object} responses.ErrorResponse "Upstream actor timeout"
// @Router /search [post]
func (route *SearchRoute) personSearch(reqCtx *gin.Context) {
	var body SearchRequestBody
	if err := reqCtx.ShouldBindJSON(&body); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation,
			"invalid request body", "e1b8f6a4-30c9-4d27-95ae-6f42d18c07b5")
		return
	}
	if body.Name == "" {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation,
			"please provide a 'name' in the request body", "92d05c7e-4fa1-48b3-a6d9-08e57b2c61f4")
		return
	}

	result, err := route.searchService.PersonSearch(reqCtx.Request.Context(), domainsearch.PersonSearchRequest{
		Name:          body.Name,
		Context:       body.Context,
		MaxResults:    body.MaxResults,
		FocusXAccount: body.FocusXAccount,
	})
	if err != nil {
		log.Error().Err(err).Str("name", body.Name).Msg("person search failed")
		responses.HandleError(reqCtx, err, "error searching for person")
		return
	}

	reqCtx.JSON(200, result)
}

// rawSearch runs the actor with full parameter control and passes results through.
// @Summary Raw search
// @Description Performs a raw actor search with full control over run parameters and returns the dataset items.
// @Tags Search API
// @Accept json
// @Produce json
// @Param request body RawSearchRequestBody true "Raw search parameters"
// @Success 200 {array} search.ActorResult
// @Failure 400 {object} responses.ErrorResponse "Missing or invalid query"
// @Failure 502 {object} responses.ErrorResponse "Upstream actor failure"
// @Failure 504 {object} responses.ErrorResponse "Upstream actor timeout"
// @Router /raw-search [post]
func (route *SearchRoute) rawSearch(reqCtx *gin.Context) {
	var body RawSearchRequestBody
	if err := reqCtx.ShouldBindJSON(&body); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation,
			"invalid request body", "a3c67f09-5d18-4b2e-8f40-cb917d63e052")
		return
	}
	if body.Query == "" {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation,
			"please provide a 'query' in the request body", "47b90e2d-81c6-4f5a-b7d3-19a0f8e6c524")
		return
	}

	results, err := route.searchService.RawSearch(reqCtx.Request.Context(), domainsearch.RawSearchRequest{
		Query:                  body.Query,
		MaxResults:             body.MaxResults,
		ScrapingTool:           domainsearch.ScrapingTool(body.ScrapingTool),
		OutputFormat:           domainsearch.OutputFormat(body.OutputFormat),
		RequestTimeoutSecs:     body.RequestTimeoutSecs,
		DynamicContentWaitSecs: body.DynamicContentWaitSecs,
		RemoveCookieWarnings:   body.RemoveCookieWarnings,
		DebugMode:              body.DebugMode,
	})
	if err != nil {
		log.Error().Err(err).Str("query", body.Query).Msg("raw search failed")
		responses.HandleError(reqCtx, err, "error performing raw search")
		return
	}

	reqCtx.JSON(200, results)
}
