package routes

import (
	"github.com/google/wire"

	"search-rag-server/internal/interfaces/httpserver/routes/mcp"
	"search-rag-server/internal/interfaces/httpserver/routes/rest"
)

// RoutesProvider provides all route dependencies
var RoutesProvider = wire.NewSet(
	rest.NewSearchRoute,
	mcp.NewSearchMCP,
	mcp.NewMCPRoute,
)
