package dataaggregator

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/rs/zerolog"
	"github.com/travigo/sbb-mcp/pkg/dataaggregator/source"
)

var ErrNoSource = errors.New("failed to find a matching Data Source for type")

type Aggregator struct {
	Sources []DataSource
}

func New(sources ...DataSource) *Aggregator {
	a := &Aggregator{}
	for _, s := range sources {
		a.RegisterSource(s)
	}

	return a
}

func (a *Aggregator) RegisterSource(source DataSource) {
	a.Sources = append(a.Sources, source)
}

// Lookup asks every source that supports T to answer the query, in registration order.
// Sources returning source.UnsupportedSourceError are skipped.
func Lookup[T any](ctx context.Context, a *Aggregator, query any) (T, error) {
	var empty T

	lookupType := reflect.TypeOf(*new(T))
	if lookupType.Kind() == reflect.Pointer {
		lookupType = lookupType.Elem()
	}

	for _, dataSource := range a.Sources {
		matches := false

		for _, supportedType := range dataSource.Supports() {
			if lookupType == supportedType {
				matches = true
				break
			}
		}

		if !matches {
			continue
		}

		returnValue, returnError := dataSource.Lookup(ctx, query)
		if errors.Is(returnError, source.UnsupportedSourceError) {
			continue
		}

		zerolog.Ctx(ctx).Debug().
			Str("source", dataSource.GetName()).
			Str("query", fmt.Sprintf("%T", query)).
			Err(returnError).
			Msg("Data Source lookup")

		if returnValue == nil {
			return empty, returnError
		}

		value, ok := returnValue.(T)
		if !ok {
			return empty, fmt.Errorf("data source %s returned %T", dataSource.GetName(), returnValue)
		}

		return value, returnError
	}

	return empty, ErrNoSource
}
