package httpserver

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"search-rag-server/internal/infrastructure/auth"
	"search-rag-server/internal/infrastructure/config"
	"search-rag-server/internal/interfaces/httpserver/middlewares"
	"search-rag-server/internal/interfaces/httpserver/routes/mcp"
	"search-rag-server/internal/interfaces/httpserver/routes/rest"
)

type HTTPServer struct {
	router        *gin.Engine
	config        *config.Config
	searchRoute   *rest.SearchRoute
	mcpRoute      *mcp.MCPRoute
	authValidator *auth.Validator
}

func NewHTTPServer(
	cfg *config.Config,
	searchRoute *rest.SearchRoute,
	mcpRoute *mcp.MCPRoute,
	authValidator *auth.Validator,
) *HTTPServer {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middlewares.RequestID())
	router.Use(middlewares.RequestLogger())
	router.Use(middlewares.CORS())
	router.Use(middlewares.MetricsRecorder())

	if authValidator != nil {
		router.Use(authValidator.Middleware())
	}

	return &HTTPServer{
		router:        router,
		config:        cfg,
		searchRoute:   searchRoute,
		mcpRoute:      mcpRoute,
		authValidator: authValidator,
	}
}

func (s *HTTPServer) setupRoutes() {
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	s.router.GET("/ready", s.ready)

	// REST endpoints live at the root; MCP under /v1
	root := s.router.Group("/")
	s.searchRoute.RegisterRouter(root)

	v1 := s.router.Group("/v1")
	s.mcpRoute.RegisterRouter(v1)
}

// ready reports whether the service can serve authenticated traffic. With
// auth disabled it is always ready; with auth enabled it requires a fetched
// JWKS key set.
func (s *HTTPServer) ready(c *gin.Context) {
	if !s.authValidator.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "message": "JWKS keys not loaded"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

func (s *HTTPServer) Run() error {
	s.setupRoutes()
	addr := fmt.Sprintf(":%s", s.config.HTTPPort)
	return s.router.Run(addr)
}
