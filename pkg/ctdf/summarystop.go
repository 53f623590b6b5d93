package ctdf

import (
	"encoding/json"
	"fmt"
)

type SummaryStopKind string

const (
	SummaryStopKindStopPlace SummaryStopKind = "StopPlace"
	SummaryStopKindAddress   SummaryStopKind = "Address"
	SummaryStopKindPoi       SummaryStopKind = "Poi"
	SummaryStopKindCoord     SummaryStopKind = "Coordinates"
	SummaryStopKindUnknown   SummaryStopKind = "UNKNOWN"
)

// SummaryStop is the first or last place of a trip summary, discriminated by __typename.
type SummaryStop struct {
	Kind     SummaryStopKind
	Typename string
	Place    Place

	Raw json.RawMessage
}

func (s *SummaryStop) UnmarshalJSON(data []byte) error {
	var place Place
	if err := json.Unmarshal(data, &place); err != nil {
		return fmt.Errorf("decode summary stop: %w", err)
	}

	*s = SummaryStop{
		Kind:     SummaryStopKind(place.Kind),
		Typename: place.Kind,
		Place:    place,
		Raw:      append(json.RawMessage(nil), data...),
	}

	switch s.Kind {
	case SummaryStopKindStopPlace, SummaryStopKindAddress, SummaryStopKindPoi, SummaryStopKindCoord:
	default:
		s.Kind = SummaryStopKindUnknown
	}

	return nil
}

func (s SummaryStop) MarshalJSON() ([]byte, error) {
	if len(s.Raw) > 0 {
		return s.Raw, nil
	}

	return json.Marshal(s.Place)
}
