package server

import (
	"go.uber.org/fx"

	"github.com/millbrook-logistics/dispatchd/internal/server/httpserver"
	"github.com/millbrook-logistics/dispatchd/internal/server/svr"
)

func Module() fx.Option {
	return fx.Module("server",
		fx.Provide(httpserver.Create),
		fx.Provide(svr.CreateEndpointGroups))
}
