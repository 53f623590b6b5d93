// Package projection extracts the payload of an operation from the backend's
// response envelope.
package projection

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/travigo/sbb-mcp/pkg/ctdf"
)

var (
	PlacesPath    = []string{"data", "places"}
	TripsPath     = []string{"data", "trips", "trips"}
	TripsPagePath = []string{"data", "trips"}
)

// ProjectionError means the expected sub-tree is not in the response.
// Messages holds errors[].message when the backend answered with a GraphQL error envelope.
type ProjectionError struct {
	Path     string
	Messages []string
	Err      error
}

func (e *ProjectionError) Error() string {
	msg := fmt.Sprintf("response has no %s", e.Path)
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if len(e.Messages) > 0 {
		msg = fmt.Sprintf("%s (backend errors: %s)", msg, strings.Join(e.Messages, "; "))
	}

	return msg
}

func (e *ProjectionError) Unwrap() error {
	return e.Err
}

type graphQLError struct {
	Message string `json:"message"`
}

// Places returns data.places exactly as received.
func Places(body json.RawMessage) (ctdf.RawPlaces, error) {
	raw, err := Extract(body, PlacesPath...)
	if err != nil {
		return nil, err
	}

	return ctdf.RawPlaces(raw), nil
}

// Trips returns data.trips.trips exactly as received. The pagination cursor is dropped.
func Trips(body json.RawMessage) (ctdf.RawTrips, error) {
	raw, err := Extract(body, TripsPath...)
	if err != nil {
		return nil, err
	}

	return ctdf.RawTrips(raw), nil
}

// TripsPage returns data.trips with the trips array untouched and the pagination cursor decoded.
func TripsPage(body json.RawMessage) (*ctdf.TripsPage, error) {
	raw, err := Extract(body, TripsPagePath...)
	if err != nil {
		return nil, err
	}

	var page ctdf.TripsPage
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, &ProjectionError{Path: strings.Join(TripsPagePath, "."), Err: err}
	}

	if len(page.Trips) == 0 || isNull(json.RawMessage(page.Trips)) {
		return nil, &ProjectionError{Path: strings.Join(TripsPath, "."), Messages: backendMessages(body)}
	}

	return &page, nil
}

// Extract walks body along path and returns the compacted sub-tree.
// A missing or null member anywhere on the path is a ProjectionError.
func Extract(body json.RawMessage, path ...string) (json.RawMessage, error) {
	dotted := strings.Join(path, ".")
	current := body

	for _, member := range path {
		var object map[string]json.RawMessage
		if err := json.Unmarshal(current, &object); err != nil {
			return nil, &ProjectionError{Path: dotted, Messages: backendMessages(body), Err: err}
		}

		next, ok := object[member]
		if !ok || isNull(next) {
			return nil, &ProjectionError{Path: dotted, Messages: backendMessages(body)}
		}
		current = next
	}

	var compacted bytes.Buffer
	if err := json.Compact(&compacted, current); err != nil {
		return nil, &ProjectionError{Path: dotted, Err: err}
	}

	return compacted.Bytes(), nil
}

func backendMessages(body json.RawMessage) []string {
	var envelope struct {
		Errors []graphQLError `json:"errors"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil
	}

	var messages []string
	for _, graphQLErr := range envelope.Errors {
		if graphQLErr.Message != "" {
			messages = append(messages, graphQLErr.Message)
		}
	}

	return messages
}

func isNull(raw json.RawMessage) bool {
	return len(bytes.TrimSpace(raw)) == 0 || string(bytes.TrimSpace(raw)) == "null"
}
