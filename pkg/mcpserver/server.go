// Package mcpserver exposes the place and trip lookups as Model Context Protocol tools.
//
// The package holds no global state: a Server is built from an aggregator, connected to a
// transport by Serve, and shut down by cancelling the context given to Serve.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
	"github.com/travigo/sbb-mcp/pkg/dataaggregator"
)

const (
	ServerName    = "sbb"
	ServerTitle   = "SBB/CFF Model Context Protocol Server"
	ServerVersion = "1.0.0"
)

type Server struct {
	aggregator *dataaggregator.Aggregator
	logger     zerolog.Logger
	mcp        *mcp.Server
}

func New(aggregator *dataaggregator.Aggregator, logger zerolog.Logger) *Server {
	s := &Server{
		aggregator: aggregator,
		logger:     logger,
		mcp: mcp.NewServer(&mcp.Implementation{
			Name:    ServerName,
			Title:   ServerTitle,
			Version: ServerVersion,
		}, nil),
	}

	s.registerTools()

	return s
}

// Connect starts a session on transport. Failing here is a StartupError.
func (s *Server) Connect(ctx context.Context, transport mcp.Transport) (*mcp.ServerSession, error) {
	session, err := s.mcp.Connect(ctx, transport, nil)
	if err != nil {
		return nil, &StartupError{Err: err}
	}

	return session, nil
}

// Serve runs a session on transport until the client disconnects or ctx is cancelled.
// Cancelling ctx closes the transport without waiting for in-flight backend requests.
func (s *Server) Serve(ctx context.Context, transport mcp.Transport) error {
	session, err := s.Connect(ctx, transport)
	if err != nil {
		return err
	}

	closed := make(chan error, 1)
	go func() {
		closed <- session.Wait()
	}()

	select {
	case <-ctx.Done():
		s.logger.Info().Msg("Shutting down MCP server")
		if err := session.Close(); err != nil {
			s.logger.Debug().Err(err).Msg("Closing MCP session")
		}
	case err := <-closed:
		s.logger.Info().AnErr("reason", err).Msg("MCP client disconnected")
	}

	return nil
}
