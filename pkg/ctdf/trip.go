package ctdf

import "encoding/json"

// TripQuery is the TripInput variable of the getTrips query.
// Places is always origin then destination.
type TripQuery struct {
	DirectConnection      bool            `json:"directConnection"`
	IncludeTransportModes []TransportMode `json:"includeTransportModes"`
	Occupancy             OccupancyFilter `json:"occupancy"`
	Places                [2]PlaceQuery   `json:"places"`
	Time                  TripTime        `json:"time"`
	WalkSpeed             int             `json:"walkSpeed"`
}

type TripTime struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

type Trip struct {
	ID         string       `json:"id"`
	Legs       []Leg        `json:"legs"`
	Situations []Situation  `json:"situations,omitempty"`
	Notices    []Notice     `json:"notices,omitempty"`
	Valid      bool         `json:"valid"`
	IsBuyable  bool         `json:"isBuyable"`
	Summary    *TripSummary `json:"summary,omitempty"`
	SearchHint *string      `json:"searchHint,omitempty"`
}

// LegKinds lists the kind of every leg in travel order.
func (t *Trip) LegKinds() []LegKind {
	kinds := make([]LegKind, 0, len(t.Legs))
	for _, leg := range t.Legs {
		kinds = append(kinds, leg.Kind)
	}

	return kinds
}

// RideLegs returns the legs spent on board a vehicle.
func (t *Trip) RideLegs() []*PTRideLeg {
	var rides []*PTRideLeg
	for _, leg := range t.Legs {
		if leg.Ride != nil {
			rides = append(rides, leg.Ride)
		}
	}

	return rides
}

type TripStatus struct {
	Alternative        bool    `json:"alternative"`
	AlternativeText    *string `json:"alternativeText,omitempty"`
	Cancelled          bool    `json:"cancelled"`
	CancelledText      *string `json:"cancelledText,omitempty"`
	PartiallyCancelled bool    `json:"partiallyCancelled"`
	Delayed            bool    `json:"delayed"`
	DelayedUnknown     bool    `json:"delayedUnknown"`
	QuayChanged        bool    `json:"quayChanged"`
}

type TripSummary struct {
	Duration                       json.RawMessage                 `json:"duration,omitempty"`
	Departure                      *ArrivalDeparture               `json:"departure,omitempty"`
	DepartureWalk                  json.RawMessage                 `json:"departureWalk,omitempty"`
	FirstStopPlace                 *SummaryStop                    `json:"firstStopPlace,omitempty"`
	Arrival                        *ArrivalDeparture               `json:"arrival,omitempty"`
	ArrivalWalk                    json.RawMessage                 `json:"arrivalWalk,omitempty"`
	LastStopPlace                  *SummaryStop                    `json:"lastStopPlace,omitempty"`
	TripStatus                     *TripStatus                     `json:"tripStatus,omitempty"`
	Product                        *ServiceProduct                 `json:"product,omitempty"`
	Direction                      *string                         `json:"direction,omitempty"`
	Occupancy                      *Occupancy                      `json:"occupancy,omitempty"`
	BoardingAlightingAccessibility *AccessibilityBoardingAlighting `json:"boardingAlightingAccessibility,omitempty"`
	International                  bool                            `json:"international"`
}

// ArrivalDeparture is the ScheduledStopPointDetail shape shared by arrivals and departures.
type ArrivalDeparture struct {
	Time            *string         `json:"time,omitempty"`
	Delay           json.RawMessage `json:"delay,omitempty"`
	DelayText       *string         `json:"delayText,omitempty"`
	QuayFormatted   *string         `json:"quayFormatted,omitempty"`
	QuayChanged     bool            `json:"quayChanged"`
	QuayChangedText *string         `json:"quayChangedText,omitempty"`
}

type Occupancy struct {
	FirstClass  *string `json:"firstClass,omitempty"`
	SecondClass *string `json:"secondClass,omitempty"`
}

type ServiceProduct struct {
	Name                       *string         `json:"name,omitempty"`
	Line                       *string         `json:"line,omitempty"`
	Number                     *string         `json:"number,omitempty"`
	VehicleMode                *string         `json:"vehicleMode,omitempty"`
	VehicleSubModeShortName    *string         `json:"vehicleSubModeShortName,omitempty"`
	CorporateIdentityIcon      *string         `json:"corporateIdentityIcon,omitempty"`
	CorporateIdentityPictogram *string         `json:"corporateIdentityPictogram,omitempty"`
	RouteIndexFrom             json.RawMessage `json:"routeIndexFrom,omitempty"`
	RouteIndexTo               json.RawMessage `json:"routeIndexTo,omitempty"`
}

// Label is the short human name of a product, e.g. "IC 5".
func (p *ServiceProduct) Label() string {
	if p == nil {
		return ""
	}
	if p.Name != nil && *p.Name != "" {
		return *p.Name
	}
	if p.Line != nil {
		return *p.Line
	}

	return ""
}

type AccessibilityBoardingAlighting struct {
	Limitation        *string        `json:"limitation,omitempty"`
	Name              *string        `json:"name,omitempty"`
	Description       *string        `json:"description,omitempty"`
	AssistanceService *TemplatedText `json:"assistanceService,omitempty"`
}
