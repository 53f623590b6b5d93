package sbb

import (
	"context"
	"encoding/json"
	"reflect"
	"time"

	"github.com/travigo/sbb-mcp/pkg/catalog"
	"github.com/travigo/sbb-mcp/pkg/config"
	"github.com/travigo/sbb-mcp/pkg/ctdf"
	"github.com/travigo/sbb-mcp/pkg/dataaggregator/query"
	"github.com/travigo/sbb-mcp/pkg/dataaggregator/source"
	"github.com/travigo/sbb-mcp/pkg/projection"
)

// Executor runs one GraphQL operation and returns the decoded response body.
type Executor interface {
	Execute(ctx context.Context, doc catalog.Document, operationName string, variables any) (json.RawMessage, error)
}

// Source answers place and trip queries from the SBB GraphQL backend.
type Source struct {
	Client Executor
	Config config.Config

	// Now is the clock used for default trip dates and times. Defaults to time.Now.
	Now func() time.Time
}

func (s Source) GetName() string {
	return "SBB GraphQL"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf(ctdf.RawPlaces{}),
		reflect.TypeOf(ctdf.RawTrips{}),
		reflect.TypeOf(ctdf.TripsPage{}),
	}
}

func (s Source) Lookup(ctx context.Context, q any) (interface{}, error) {
	switch q := q.(type) {
	case query.Places:
		return s.PlacesQuery(ctx, q)
	case query.Trips:
		return s.TripsQuery(ctx, q)
	case query.TripsPage:
		return s.TripsPageQuery(ctx, q)
	default:
		return nil, source.UnsupportedSourceError
	}
}

func (s Source) PlacesQuery(ctx context.Context, q query.Places) (ctdf.RawPlaces, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	variables := catalog.NewPlacesVariables(q.Value, s.Config.Backend.Language)

	body, err := s.execute(ctx, catalog.OperationGetPlaces, variables)
	if err != nil {
		return nil, err
	}

	return projection.Places(body)
}

func (s Source) TripsQuery(ctx context.Context, q query.Trips) (ctdf.RawTrips, error) {
	body, err := s.executeTrips(ctx, q)
	if err != nil {
		return nil, err
	}

	return projection.Trips(body)
}

func (s Source) TripsPageQuery(ctx context.Context, q query.TripsPage) (*ctdf.TripsPage, error) {
	body, err := s.executeTrips(ctx, q.Trips)
	if err != nil {
		return nil, err
	}

	return projection.TripsPage(body)
}

func (s Source) executeTrips(ctx context.Context, q query.Trips) (json.RawMessage, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	q = q.FillDefaults(s.now())

	variables := catalog.NewTripsVariables(catalog.TripsParams{
		From:             q.From,
		To:               q.To,
		Date:             q.Date,
		Time:             q.Time,
		PagingCursor:     q.PagingCursor,
		TransportModes:   s.Config.Trips.TransportModes,
		Occupancy:        s.Config.Trips.Occupancy,
		WalkSpeed:        s.Config.Trips.WalkSpeed,
		DirectConnection: s.Config.Trips.DirectConnection,
		Language:         s.Config.Backend.Language,
	})

	return s.execute(ctx, catalog.OperationGetTrips, variables)
}

func (s Source) execute(ctx context.Context, operationName string, variables any) (json.RawMessage, error) {
	doc, err := catalog.Lookup(operationName)
	if err != nil {
		return nil, err
	}

	return s.Client.Execute(ctx, doc, operationName, variables)
}

func (s Source) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}

	return s.Now()
}
