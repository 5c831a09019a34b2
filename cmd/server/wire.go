//go:build wireinject

package main

import (
	"context"

	"github.com/google/wire"

	"search-rag-server/internal/domain"
	"search-rag-server/internal/infrastructure"
	"search-rag-server/internal/interfaces"
	"search-rag-server/internal/interfaces/httpserver/routes"
)

func CreateApplication(ctx context.Context) (*Application, error) {
	wire.Build(
		domain.DomainProvider,
		infrastructure.InfrastructureProvider,
		routes.RoutesProvider,
		interfaces.InterfacesProvider,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}
