package mcpserver

import (
	"context"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
	"github.com/travigo/sbb-mcp/pkg/ctdf"
	"github.com/travigo/sbb-mcp/pkg/dataaggregator"
	"github.com/travigo/sbb-mcp/pkg/dataaggregator/query"
	"github.com/travigo/sbb-mcp/pkg/projection"
)

const (
	ToolGetPlaces = "sbb_get_places"
	ToolGetTrips  = "sbb_get_trips"

	DatePattern  = `^(\d{4}-\d{2}-\d{2})?$`
	ClockPattern = `^(\d{2}:\d{2})?$`
)

type PlacesInput struct {
	Value string `json:"value"`
}

type TripsInput struct {
	From string `json:"from"`
	To   string `json:"to"`
	Date string `json:"date,omitempty"`
	Time string `json:"time,omitempty"`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        ToolGetPlaces,
		Description: "Return a list of places available from name",
		InputSchema: placesSchema(),
	}, s.getPlaces)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        ToolGetTrips,
		Description: "Return a list of trips available from two places ID or name",
		InputSchema: tripsSchema(),
	}, s.getTrips)
}

func placesSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"value": nonEmptyString("Name of the place to look up"),
		},
		Required: []string{"value"},
	}
}

func tripsSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"from": nonEmptyString("Origin place ID or name"),
			"to":   nonEmptyString("Destination place ID or name"),
			"date": {
				Type:        "string",
				Pattern:     DatePattern,
				Description: "Travel date as YYYY-MM-DD, today when omitted",
			},
			"time": {
				Type:        "string",
				Pattern:     ClockPattern,
				Description: "Departure time as HH:MM, now when omitted",
			},
		},
		Required: []string{"from", "to"},
	}
}

func nonEmptyString(description string) *jsonschema.Schema {
	minLength := 1

	return &jsonschema.Schema{
		Type:        "string",
		MinLength:   &minLength,
		Description: description,
	}
}

func (s *Server) getPlaces(ctx context.Context, _ *mcp.CallToolRequest, input PlacesInput) (*mcp.CallToolResult, any, error) {
	ctx, logger := s.invocation(ctx, ToolGetPlaces)

	payload, err := dataaggregator.Lookup[ctdf.RawPlaces](ctx, s.aggregator, query.Places{
		Value: input.Value,
	})
	if err != nil {
		logger.Error().Err(err).Msg("Tool invocation failed")
		return nil, nil, err
	}

	logger.Info().Int("bytes", len(payload)).Msg("Tool invocation complete")

	return textResult(payload.String()), nil, nil
}

func (s *Server) getTrips(ctx context.Context, _ *mcp.CallToolRequest, input TripsInput) (*mcp.CallToolResult, any, error) {
	ctx, logger := s.invocation(ctx, ToolGetTrips)

	payload, err := dataaggregator.Lookup[ctdf.RawTrips](ctx, s.aggregator, query.Trips{
		From: input.From,
		To:   input.To,
		Date: input.Date,
		Time: input.Time,
	})
	if err != nil {
		logger.Error().Err(err).Msg("Tool invocation failed")
		return nil, nil, err
	}

	if logger.GetLevel() <= zerolog.DebugLevel {
		logTripsSummary(logger, payload)
	}
	logger.Info().Int("bytes", len(payload)).Msg("Tool invocation complete")

	return textResult(payload.String()), nil, nil
}

func (s *Server) invocation(ctx context.Context, tool string) (context.Context, *zerolog.Logger) {
	logger := s.logger.With().
		Str("tool", tool).
		Str("requestId", uuid.NewString()).
		Logger()

	return logger.WithContext(ctx), &logger
}

func logTripsSummary(logger *zerolog.Logger, payload ctdf.RawTrips) {
	trips, err := projection.DecodeTrips(payload)
	if err != nil {
		logger.Debug().Err(err).Msg("Trips payload not decodable")
		return
	}

	for _, trip := range trips {
		kinds := make([]string, 0, len(trip.Legs))
		for _, kind := range trip.LegKinds() {
			kinds = append(kinds, string(kind))
		}

		logger.Debug().
			Str("trip", trip.ID).
			Strs("legs", kinds).
			Bool("valid", trip.Valid).
			Msg("Trip")
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}
