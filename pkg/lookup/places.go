package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/kr/pretty"
	"github.com/sourcegraph/conc/pool"
	"github.com/travigo/sbb-mcp/pkg/ctdf"
	"github.com/travigo/sbb-mcp/pkg/dataaggregator"
	"github.com/travigo/sbb-mcp/pkg/dataaggregator/query"
	"github.com/travigo/sbb-mcp/pkg/projection"
	"golang.org/x/exp/slices"
)

const maxConcurrentLookups = 4

// NamedPlaces pairs a looked up name with the places the backend returned for it.
type NamedPlaces struct {
	index  int
	Value  string          `json:"value"`
	Places json.RawMessage `json:"places"`
}

// LookupPlaces resolves every name as its own query and returns the results in input order.
func LookupPlaces(ctx context.Context, aggregator *dataaggregator.Aggregator, batch query.PlacesBatch) ([]NamedPlaces, error) {
	if err := batch.Validate(); err != nil {
		return nil, err
	}

	p := pool.NewWithResults[NamedPlaces]().WithErrors().WithMaxGoroutines(maxConcurrentLookups)

	for index, value := range batch.Values {
		p.Go(func() (NamedPlaces, error) {
			places, err := dataaggregator.Lookup[ctdf.RawPlaces](ctx, aggregator, query.Places{Value: value})
			if err != nil {
				return NamedPlaces{}, fmt.Errorf("places for %q: %w", value, err)
			}

			return NamedPlaces{
				index:  index,
				Value:  value,
				Places: json.RawMessage(places),
			}, nil
		})
	}

	results, err := p.Wait()
	if err != nil {
		return nil, err
	}

	slices.SortFunc(results, func(a, b NamedPlaces) int {
		return a.index - b.index
	})

	return results, nil
}

func writePlaces(w io.Writer, results []NamedPlaces, format string) error {
	switch format {
	case formatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(results)
	case formatPretty:
		for _, result := range results {
			places, err := projection.DecodePlaces(ctdf.RawPlaces(result.Places))
			if err != nil {
				return err
			}

			fmt.Fprintf(w, "%s:\n", result.Value)
			pretty.Fprintf(w, "%# v\n", places)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
