package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/millbrook-logistics/dispatchd/cmd/app/server"
	"github.com/millbrook-logistics/dispatchd/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "dispatchd",
		Description: "Dispatch planning and dock board backend for the Millbrook distribution center. Built with Go, fiber, bun and go.uber.org/fx. Uses NATS as MQ and Redis as state synchronization.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
