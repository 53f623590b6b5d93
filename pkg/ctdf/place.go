package ctdf

import "encoding/json"

const PlaceQueryTypeName = "NAME"

// Place is a location resolved by the backend. Kind carries the GraphQL __typename.
type Place struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Kind   string `json:"__typename,omitempty"`
	Canton string `json:"canton,omitempty"`
}

// PlaceQuery describes how the backend should resolve a place reference.
type PlaceQuery struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

func NewPlaceQuery(value string) PlaceQuery {
	return PlaceQuery{
		Type:  PlaceQueryTypeName,
		Value: value,
	}
}

// RawPlaces is the data.places array exactly as the backend returned it.
type RawPlaces json.RawMessage

// RawTrips is the data.trips.trips array exactly as the backend returned it.
type RawTrips json.RawMessage

func (r RawPlaces) String() string {
	return string(r)
}

func (r RawPlaces) MarshalJSON() ([]byte, error) {
	return json.RawMessage(r).MarshalJSON()
}

func (r *RawPlaces) UnmarshalJSON(data []byte) error {
	return (*json.RawMessage)(r).UnmarshalJSON(data)
}

func (r RawTrips) String() string {
	return string(r)
}

func (r RawTrips) MarshalJSON() ([]byte, error) {
	return json.RawMessage(r).MarshalJSON()
}

func (r *RawTrips) UnmarshalJSON(data []byte) error {
	return (*json.RawMessage)(r).UnmarshalJSON(data)
}
