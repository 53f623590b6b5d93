package catalog

import "github.com/travigo/sbb-mcp/pkg/ctdf"

type PlacesVariables struct {
	Input    ctdf.PlaceQuery `json:"input"`
	Language string          `json:"language"`
}

type TripsVariables struct {
	Input        ctdf.TripQuery `json:"input"`
	PagingCursor *string        `json:"pagingCursor,omitempty"`
	Language     string         `json:"language"`
}

// TripsParams are the already normalised inputs of a trip search plus the configured fixed parts.
type TripsParams struct {
	From string
	To   string
	Date string
	Time string

	PagingCursor string

	TransportModes   []ctdf.TransportMode
	Occupancy        ctdf.OccupancyFilter
	WalkSpeed        int
	DirectConnection bool
	Language         string
}

func NewPlacesVariables(value string, language string) PlacesVariables {
	return PlacesVariables{
		Input:    ctdf.NewPlaceQuery(value),
		Language: language,
	}
}

func NewTripsVariables(params TripsParams) TripsVariables {
	variables := TripsVariables{
		Input: ctdf.TripQuery{
			DirectConnection:      params.DirectConnection,
			IncludeTransportModes: params.TransportModes,
			Occupancy:             params.Occupancy,
			Places: [2]ctdf.PlaceQuery{
				ctdf.NewPlaceQuery(params.From),
				ctdf.NewPlaceQuery(params.To),
			},
			Time: ctdf.TripTime{
				Date: params.Date,
				Time: params.Time,
			},
			WalkSpeed: params.WalkSpeed,
		},
		Language: params.Language,
	}

	if variables.Input.IncludeTransportModes == nil {
		variables.Input.IncludeTransportModes = []ctdf.TransportMode{}
	}

	if params.PagingCursor != "" {
		cursor := params.PagingCursor
		variables.PagingCursor = &cursor
	}

	return variables
}
