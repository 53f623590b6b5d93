package projection

import (
	"encoding/json"

	"github.com/travigo/sbb-mcp/pkg/ctdf"
)

// DecodePlaces turns a projected places payload into typed places.
func DecodePlaces(raw ctdf.RawPlaces) ([]ctdf.Place, error) {
	var places []ctdf.Place
	if err := json.Unmarshal(raw, &places); err != nil {
		return nil, &ProjectionError{Path: "data.places", Err: err}
	}

	return places, nil
}

// DecodeTrips turns a projected trips payload into typed trips. Legs of unknown kinds are kept raw.
func DecodeTrips(raw ctdf.RawTrips) ([]ctdf.Trip, error) {
	var trips []ctdf.Trip
	if err := json.Unmarshal(raw, &trips); err != nil {
		return nil, &ProjectionError{Path: "data.trips.trips", Err: err}
	}

	return trips, nil
}
