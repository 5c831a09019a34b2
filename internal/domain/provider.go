package domain

import (
	"github.com/google/wire"

	domainsearch "search-rag-server/internal/domain/search"
)

// DomainProvider provides all domain services
var DomainProvider = wire.NewSet(
	domainsearch.NewSearchService,
)
