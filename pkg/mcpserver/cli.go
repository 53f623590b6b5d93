package mcpserver

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
	"github.com/travigo/sbb-mcp/pkg/config"
	"github.com/travigo/sbb-mcp/pkg/dataaggregator/global"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "Model Context Protocol server for agent hosts",
		Subcommands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "serve the SBB tools over stdio",
				Action: func(c *cli.Context) error {
					cfg, err := config.Load(c.String("config"))
					if err != nil {
						return err
					}

					ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
					defer stop()

					server := New(global.Setup(cfg), log.Logger)

					log.Info().
						Str("endpoint", cfg.Backend.Endpoint).
						Str("language", cfg.Backend.Language).
						Msg("SBB/CFF MCP Server running on stdio")

					return server.Serve(ctx, &mcp.StdioTransport{})
				},
			},
		},
	}
}
