package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"canvasflow.dev/backend/cmd/app/server"
	"canvasflow.dev/backend/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "cfbackend",
		Description: "The CanvasFlow Pro backend. Built with Go, fiber, bun and go.uber.org/fx. Uses NATS for board events and Redis for shared state.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
