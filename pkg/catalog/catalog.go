// Package catalog holds the fixed GraphQL documents sent to the SBB backend and
// assembles their variables.
package catalog

import (
	_ "embed"
	"errors"
)

const (
	OperationGetPlaces = "GetPlaces"
	OperationGetTrips  = "getTrips"
)

var ErrUnknownOperation = errors.New("unknown GraphQL operation")

//go:embed queries/get_places.graphql
var getPlacesQuery string

//go:embed queries/get_trips.graphql
var getTripsQuery string

type Document struct {
	OperationName string
	Query         string
}

var (
	GetPlaces = Document{OperationName: OperationGetPlaces, Query: getPlacesQuery}
	GetTrips  = Document{OperationName: OperationGetTrips, Query: getTripsQuery}
)

// Lookup selects a document by its operation name
func Lookup(operationName string) (Document, error) {
	switch operationName {
	case OperationGetPlaces:
		return GetPlaces, nil
	case OperationGetTrips:
		return GetTrips, nil
	default:
		return Document{}, ErrUnknownOperation
	}
}
