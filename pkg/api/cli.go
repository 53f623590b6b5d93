package api

import (
	"github.com/rs/zerolog/log"
	"github.com/travigo/sbb-mcp/pkg/config"
	"github.com/travigo/sbb-mcp/pkg/dataaggregator/global"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the places and trips lookups over HTTP",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					cfg, err := config.Load(c.String("config"))
					if err != nil {
						return err
					}

					log.Info().Str("listen", c.String("listen")).Msg("Starting web api")

					return SetupServer(c.String("listen"), global.Setup(cfg), log.Logger)
				},
			},
		},
	}
}
