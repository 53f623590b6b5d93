package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/travigo/sbb-mcp/pkg/api"
	"github.com/travigo/sbb-mcp/pkg/lookup"
	"github.com/travigo/sbb-mcp/pkg/mcpserver"
	"github.com/travigo/sbb-mcp/pkg/util"
	"github.com/urfave/cli/v2"

	_ "time/tzdata"
)

func main() {
	env := util.GetEnvironmentVariables()

	// stdout carries the MCP stream, logs stay on stderr
	if !util.EnvironmentFlag(env, "SBB_MCP_LOG_FORMAT", "JSON") {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	if util.EnvironmentFlag(env, "SBB_MCP_DEBUG", "YES") {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "sbb-mcp",
		Description: "SBB/CFF places and trips for agent hosts, the web and the terminal",

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "YAML file overriding the built-in backend and trip settings",
			},
		},

		Commands: []*cli.Command{
			mcpserver.RegisterCLI(),
			api.RegisterCLI(),
			lookup.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
